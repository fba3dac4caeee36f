package availability

import "squash-cli/api"

// CourtPolicy infers which physical court a slot belongs to when the feed
// has split one period into per-court records without reliable location
// data. Venues with a different court count or pricing scheme can supply
// their own policy without touching the aggregation.
type CourtPolicy interface {
	AssignCourt(slot api.SlotData) (name, id string)
}

const (
	courtOneName = "Squash Court 1"
	courtOneID   = "041ZSQU001"
	courtTwoName = "Squash Court 2"
	courtTwoID   = "041ZSQU002"
)

// twoCourtPricePolicy encodes how the Places Leisure feed presents a pair
// of squash courts: the still-bookable court carries a positive price and
// remaining uses, the booked one shows zero for both. That economic
// signature is the only reliable identity signal in the feed, and it always
// points the available record at court 2.
type twoCourtPricePolicy struct{}

func (twoCourtPricePolicy) AssignCourt(slot api.SlotData) (string, string) {
	if slot.RemainingUses > 0 && slot.FirstOfferPrice() > 0 {
		return courtTwoName, courtTwoID
	}
	return courtOneName, courtOneID
}
