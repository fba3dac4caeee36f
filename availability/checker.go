package availability

import (
	"context"
	"fmt"
	"time"

	"squash-cli/api"
)

// Feed materializes the full current feed; satisfied by *api.Client.
type Feed interface {
	FetchAllItems(ctx context.Context) ([]api.FeedItem, error)
}

// Checker answers whether a squash court is free during a 40-minute target
// window and the 40 minutes before it.
type Checker struct {
	Feed        Feed
	FacilityIDs []string
	Location    *time.Location
	BookingURL  string
	Aggregator  *Aggregator
}

func NewChecker(feed Feed, facilityIDs []string, loc *time.Location, bookingURL string) *Checker {
	return &Checker{
		Feed:        feed,
		FacilityIDs: facilityIDs,
		Location:    loc,
		BookingURL:  bookingURL,
		Aggregator:  NewAggregator(),
	}
}

type SlotTimes struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TimeSlots struct {
	Main   SlotTimes `json:"main"`
	Before SlotTimes `json:"before"`
}

// Report is the full outcome of one availability check. Message and
// success are templated on the before-window count; the booking URL deep
// links the facility calendar at the before window's start.
type Report struct {
	Success             bool                         `json:"success"`
	Message             string                       `json:"message"`
	MainSlotAvailable   int                          `json:"main_slot_available"`
	BeforeSlotAvailable int                          `json:"before_slot_available"`
	BookingURL          string                       `json:"booking_url"`
	MainCourts          map[string]CourtAvailability `json:"main_court_info"`
	BeforeCourts        map[string]CourtAvailability `json:"before_court_info"`
	TimeSlots           TimeSlots                    `json:"time_slots"`
	Error               string                       `json:"error,omitempty"`
}

// Check runs one query: fetch the whole feed, filter it to the two
// windows, and reconstruct per-court availability for each.
func (c *Checker) Check(ctx context.Context, date, startTime string) (Report, error) {
	mainWindow, beforeWindow, err := WindowPair(date, startTime, c.Location)
	if err != nil {
		return Report{}, err
	}

	items, err := c.Feed.FetchAllItems(ctx)
	if err != nil {
		return Report{}, err
	}

	mainCourts := c.Aggregator.Aggregate(FilterSlots(items, c.FacilityIDs, mainWindow)).Resolve()
	beforeCourts := c.Aggregator.Aggregate(FilterSlots(items, c.FacilityIDs, beforeWindow)).Resolve()

	mainAvailable := countAvailable(mainCourts)
	beforeAvailable := countAvailable(beforeCourts)

	report := Report{
		Success:             beforeAvailable > 0,
		Message:             beforeMessage(beforeAvailable),
		MainSlotAvailable:   mainAvailable,
		BeforeSlotAvailable: beforeAvailable,
		BookingURL:          c.deepLink(beforeWindow),
		MainCourts:          mainCourts,
		BeforeCourts:        beforeCourts,
		TimeSlots: TimeSlots{
			Main:   SlotTimes{Start: mainWindow.Start.Format("15:04"), End: mainWindow.End.Format("15:04")},
			Before: SlotTimes{Start: beforeWindow.Start.Format("15:04"), End: beforeWindow.End.Format("15:04")},
		},
	}
	return report, nil
}

// FailureReport normalizes any error that reached the outer boundary into
// the failure-shaped report, with the plain calendar URL as fallback.
func FailureReport(err error, bookingURL string) Report {
	return Report{
		Success:    false,
		Message:    fmt.Sprintf("Error checking availability: %v", err),
		BookingURL: bookingURL,
		Error:      err.Error(),
	}
}

func beforeMessage(available int) string {
	switch {
	case available == 1:
		return "There is one slot free before your booking"
	case available > 1:
		return fmt.Sprintf("There are %d slots free before your booking", available)
	default:
		return "There is no slots free before your booking"
	}
}

func countAvailable(courts map[string]CourtAvailability) int {
	count := 0
	for _, court := range courts {
		if court.Available {
			count++
		}
	}
	return count
}

// deepLink parameterizes the facility calendar with the before window's
// start. The calendar expects wall-clock times expressed as UTC with
// millisecond precision, so the local clock reading is re-stamped as UTC
// rather than converted.
func (c *Checker) deepLink(before Window) string {
	start := before.Start
	activity := time.Date(start.Year(), start.Month(), start.Day(),
		start.Hour(), start.Minute(), 0, 0, time.UTC)
	previous := activity.Add(-SlotDuration)

	const stamp = "2006-01-02T15:04:05.000Z"
	return fmt.Sprintf("%s?activityDate=%s&previousActivityDate=%s",
		c.BookingURL, activity.Format(stamp), previous.Format(stamp))
}
