package api

// FeedPage is one page of the RPDE slot feed.
type FeedPage struct {
	Items []FeedItem `json:"items"`
	Next  string     `json:"next"`
}

type FeedItem struct {
	Identifier string   `json:"identifier"`
	Data       SlotData `json:"data"`
}

// SlotData describes one bookable period. The feed embeds the facility id
// inside the facilityUse URI rather than carrying it as its own field.
type SlotData struct {
	Identifier    string             `json:"identifier"`
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	FacilityUse   string             `json:"facilityUse"`
	RemainingUses int                `json:"remainingUses"`
	Offers        []Offer            `json:"offers"`
	Locations     []ActivityLocation `json:"beta:sportsActivityLocation"`
}

type Offer struct {
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
}

type ActivityLocation struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// FirstOfferPrice returns the first offer's price; the feed lists the
// authoritative price first.
func (s SlotData) FirstOfferPrice() float64 {
	if len(s.Offers) == 0 {
		return 0
	}
	return s.Offers[0].Price
}
