package availability

import (
	"context"
	"errors"
	"testing"

	"squash-cli/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeed struct {
	items   []api.FeedItem
	err     error
	fetches int
}

func (s *stubFeed) FetchAllItems(ctx context.Context) ([]api.FeedItem, error) {
	s.fetches++
	return s.items, s.err
}

const calendarURL = "https://placesleisure.gladstonego.cloud/book/calendar/041A000005"

func newTestChecker(t *testing.T, feed Feed) *Checker {
	t.Helper()
	return NewChecker(feed, []string{"041A000005"}, mustLocation(t, "Europe/London"), calendarURL)
}

func TestCheck_OneSlotFreeBeforeBooking(t *testing.T) {
	beforeSlot := slot("before", "2026-02-03T09:20:00Z", 1, 10.25, courtTwo)
	beforeSlot.Data.EndDate = "2026-02-03T10:00:00Z"

	mainSlot := slot("main", "2026-02-03T10:00:00Z", 0, 0, courtTwo)

	noise := slot("noise", "2026-02-03T09:20:00Z", 5, 10.25)
	noise.Data.FacilityUse = "https://example.com/facility-uses/999B000001"

	feed := &stubFeed{items: []api.FeedItem{mainSlot, beforeSlot, noise}}
	report, err := newTestChecker(t, feed).Check(context.Background(), "2026-02-03", "10:00")
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, "There is one slot free before your booking", report.Message)
	assert.Equal(t, 1, report.BeforeSlotAvailable)
	assert.Equal(t, 0, report.MainSlotAvailable)

	assert.Equal(t, SlotTimes{Start: "10:00", End: "10:40"}, report.TimeSlots.Main)
	assert.Equal(t, SlotTimes{Start: "09:20", End: "10:00"}, report.TimeSlots.Before)

	assert.Equal(t,
		calendarURL+"?activityDate=2026-02-03T09:20:00.000Z&previousActivityDate=2026-02-03T08:40:00.000Z",
		report.BookingURL)

	require.Contains(t, report.BeforeCourts, "Squash Court 2")
	assert.True(t, report.BeforeCourts["Squash Court 2"].Available)
	require.Contains(t, report.MainCourts, "Squash Court 2")
	assert.False(t, report.MainCourts["Squash Court 2"].Available)
}

func TestCheck_NoSlotFreeBeforeBooking(t *testing.T) {
	mainSlot := slot("main", "2026-02-03T10:00:00Z", 1, 10.25, courtOne)

	feed := &stubFeed{items: []api.FeedItem{mainSlot}}
	report, err := newTestChecker(t, feed).Check(context.Background(), "2026-02-03", "10:00")
	require.NoError(t, err)

	assert.False(t, report.Success)
	assert.Equal(t, "There is no slots free before your booking", report.Message)
	assert.Equal(t, 1, report.MainSlotAvailable)
	assert.Equal(t, 0, report.BeforeSlotAvailable)
}

func TestCheck_PluralMessage(t *testing.T) {
	// One unsplit period covering both courts, both still bookable.
	beforeSlot := slot("before", "2026-02-03T09:20:00Z", 1, 10.25, courtOne, courtTwo)
	beforeSlot.Data.EndDate = "2026-02-03T10:00:00Z"

	feed := &stubFeed{items: []api.FeedItem{beforeSlot}}
	report, err := newTestChecker(t, feed).Check(context.Background(), "2026-02-03", "10:00")
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, "There are 2 slots free before your booking", report.Message)
}

func TestCheck_BadInputFailsBeforeFetching(t *testing.T) {
	feed := &stubFeed{}
	_, err := newTestChecker(t, feed).Check(context.Background(), "03/02/2026", "10:00")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, feed.fetches)
}

func TestCheck_FeedFailurePropagates(t *testing.T) {
	feedErr := &api.TransportError{URL: "https://example.com/feed", Status: "502 Bad Gateway"}
	feed := &stubFeed{err: feedErr}

	_, err := newTestChecker(t, feed).Check(context.Background(), "2026-02-03", "10:00")
	require.Error(t, err)

	var transportErr *api.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestFailureReport(t *testing.T) {
	report := FailureReport(errors.New("feed exploded"), calendarURL)

	assert.False(t, report.Success)
	assert.Equal(t, "Error checking availability: feed exploded", report.Message)
	assert.Equal(t, calendarURL, report.BookingURL)
	assert.Equal(t, "feed exploded", report.Error)
	assert.Empty(t, report.MainCourts)
}
