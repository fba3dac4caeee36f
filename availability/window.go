package availability

import (
	"fmt"
	"time"
)

// SlotDuration is the fixed length of a squash booking at Places Leisure.
const SlotDuration = 40 * time.Minute

// Window is a half-open interval [Start, End). Both bounds carry the
// facility's timezone; feed timestamps are converted into it before any
// comparison, so a daylight-saving transition inside the feed cannot skew
// the match.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) overlaps the window. Touching
// endpoints do not overlap.
func (w Window) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// InputError reports caller-supplied date or time text that does not parse.
// It is raised before any network call is made.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// WindowPair computes the target window [t, t+40m) and the window
// immediately before it [t-40m, t) for a date ("2006-01-02") and start
// time ("15:04") in the facility's timezone.
func WindowPair(date, startTime string, loc *time.Location) (main, before Window, err error) {
	if loc == nil {
		loc = time.UTC
	}
	start, parseErr := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, loc)
	if parseErr != nil {
		return Window{}, Window{}, &InputError{Input: date + " " + startTime, Err: parseErr}
	}

	main = Window{Start: start, End: start.Add(SlotDuration)}
	before = Window{Start: start.Add(-SlotDuration), End: start}
	return main, before, nil
}

var feedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
}

// parseFeedTime parses a feed timestamp (Z or explicit offset) and
// normalizes it into the facility's timezone.
func parseFeedTime(input string, loc *time.Location) (time.Time, bool) {
	if input == "" {
		return time.Time{}, false
	}
	for _, layout := range feedTimeLayouts {
		parsed, err := time.Parse(layout, input)
		if err == nil {
			return parsed.In(loc), true
		}
	}
	return time.Time{}, false
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
