package availability

import (
	"strings"

	"squash-cli/api"
)

// MatchesFacility reports whether a slot's facilityUse URI refers to one of
// the target facility ids. The feed embeds the id inside a longer URI, so
// this is a substring test; an id that is a prefix of another facility's id
// would false-positive, which the current Places Leisure data never shows.
func MatchesFacility(facilityUse string, facilityIDs []string) bool {
	for _, id := range facilityIDs {
		if id != "" && strings.Contains(facilityUse, id) {
			return true
		}
	}
	return false
}

// FilterSlots keeps the items that belong to one of the target facilities,
// fall on the window's calendar date in the facility timezone, and overlap
// the window. Items whose timestamps do not parse are dropped; the feed
// routinely carries malformed records and they are noise, not a failure.
func FilterSlots(items []api.FeedItem, facilityIDs []string, w Window) []api.FeedItem {
	loc := w.Start.Location()

	filtered := []api.FeedItem{}
	for _, item := range items {
		if !MatchesFacility(item.Data.FacilityUse, facilityIDs) {
			continue
		}

		start, ok := parseFeedTime(item.Data.StartDate, loc)
		if !ok {
			continue
		}
		end, ok := parseFeedTime(item.Data.EndDate, loc)
		if !ok {
			continue
		}

		if !sameDate(start, w.Start) {
			continue
		}
		if !w.Overlaps(start, end) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
