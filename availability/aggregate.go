package availability

import (
	"fmt"
	"sort"

	"squash-cli/api"
)

const (
	// Key and id of the synthetic entry emitted when the feed only shows
	// the booked half of a partially booked court pair.
	PartialBookingName = "Available Courts"
	PartialBookingID   = "partial_booking"
)

// Period is one bookable period folded into a court's availability.
type Period struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Remaining int    `json:"remaining"`
}

// CourtAvailability is the per-court view of one window.
type CourtAvailability struct {
	ID            string   `json:"id"`
	Available     bool     `json:"available"`
	RemainingUses int      `json:"remaining_uses"`
	Periods       []Period `json:"slots"`
}

// Aggregation is the raw outcome of grouping one window's slots: the
// per-court map plus, when the partial-booking pattern fired, the period it
// fired for. The two are kept separate so the override is decided once per
// window rather than mid-iteration.
type Aggregation struct {
	Courts  map[string]CourtAvailability
	Partial *Period
}

// Resolve collapses the aggregation into the final per-court map. A
// partial-booking signal replaces the whole window's result with a single
// generic entry: the feed omitted the free court's record entirely, so any
// specific name would be a guess.
func (g Aggregation) Resolve() map[string]CourtAvailability {
	if g.Partial == nil {
		return g.Courts
	}
	period := *g.Partial
	period.Remaining = 1
	return map[string]CourtAvailability{
		PartialBookingName: {
			ID:            PartialBookingID,
			Available:     true,
			RemainingUses: 1,
			Periods:       []Period{period},
		},
	}
}

// IsPartialBooking reports whether a resolved map is the generic
// partial-booking entry rather than named courts.
func IsPartialBooking(courts map[string]CourtAvailability) bool {
	for _, court := range courts {
		if court.ID == PartialBookingID {
			return true
		}
	}
	return false
}

type Aggregator struct {
	Policy CourtPolicy
}

func NewAggregator() *Aggregator {
	return &Aggregator{Policy: twoCourtPricePolicy{}}
}

// Aggregate reconstructs per-court availability from one window's filtered
// slots. Slots sharing an exact startDate string describe the same period:
// a lone slot has not been split by court, several slots are the individual
// courts. Groups are walked in sorted start order so the outcome does not
// depend on map iteration; if several groups carry the partial-booking
// pattern the latest one's period wins.
func (a *Aggregator) Aggregate(items []api.FeedItem) Aggregation {
	groups := map[string][]api.SlotData{}
	for _, item := range items {
		start := item.Data.StartDate
		groups[start] = append(groups[start], item.Data)
	}

	starts := make([]string, 0, len(groups))
	for start := range groups {
		starts = append(starts, start)
	}
	sort.Strings(starts)

	out := Aggregation{Courts: map[string]CourtAvailability{}}
	for _, start := range starts {
		group := groups[start]
		if len(group) == 1 {
			a.aggregateSingle(group[0], &out)
		} else {
			a.aggregateSplit(group, out.Courts)
		}
	}
	return out
}

// aggregateSingle handles a period the feed has not split by court. With no
// location records the slot is facility-level; with locations the period
// applies to every one of them. A slot showing zero remaining uses but a
// positive price across exactly two courts is the partially booked pattern:
// the feed dropped the free court's record, so only a signal is recorded.
func (a *Aggregator) aggregateSingle(slot api.SlotData, out *Aggregation) {
	if len(slot.Locations) == 0 {
		name := fmt.Sprintf("Squash Court (%s)", slotIdentifier(slot))
		addPeriod(out.Courts, name, slotIdentifier(slot), slot)
	} else {
		for _, location := range slot.Locations {
			name := location.Name
			if name == "" {
				name = fmt.Sprintf("Squash Court (%s)", location.Identifier)
			}
			id := location.Identifier
			if id == "" {
				id = slotIdentifier(slot)
			}
			addPeriod(out.Courts, name, id, slot)
		}
	}

	partiallyBooked := slot.RemainingUses == 0 &&
		len(slot.Offers) > 0 &&
		slot.Offers[0].Price > 0 &&
		len(slot.Locations) == 2
	if partiallyBooked {
		out.Partial = &Period{Start: slot.StartDate, End: slot.EndDate, Remaining: 1}
	}
}

// aggregateSplit handles several slots at the same instant, one per court.
// Location data on these records is unreliable, so the policy infers each
// slot's court from its price/remaining signature; a location entry whose
// name matches the inferred court contributes its own id.
func (a *Aggregator) aggregateSplit(group []api.SlotData, courts map[string]CourtAvailability) {
	sorted := make([]api.SlotData, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Identifier < sorted[j].Identifier
	})

	for _, slot := range sorted {
		name, id := a.Policy.AssignCourt(slot)
		for _, location := range slot.Locations {
			if location.Name == name {
				id = location.Identifier
				break
			}
		}
		addPeriod(courts, name, id, slot)
	}
}

func addPeriod(courts map[string]CourtAvailability, name, id string, slot api.SlotData) {
	court, ok := courts[name]
	if !ok {
		court = CourtAvailability{ID: id}
	}

	if slot.RemainingUses > court.RemainingUses {
		court.RemainingUses = slot.RemainingUses
	}
	if slot.RemainingUses > 0 {
		court.Available = true
	}
	court.Periods = append(court.Periods, Period{
		Start:     slot.StartDate,
		End:       slot.EndDate,
		Remaining: slot.RemainingUses,
	})
	courts[name] = court
}

func slotIdentifier(slot api.SlotData) string {
	if slot.Identifier == "" {
		return "Unknown"
	}
	return slot.Identifier
}

// AvailableForBoth returns the sorted court names available in both maps.
func AvailableForBoth(main, before map[string]CourtAvailability) []string {
	common := []string{}
	for name, court := range main {
		if !court.Available {
			continue
		}
		if other, ok := before[name]; ok && other.Available {
			common = append(common, name)
		}
	}
	sort.Strings(common)
	return common
}
