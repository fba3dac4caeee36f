package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestWindowOverlaps_HalfOpen(t *testing.T) {
	base := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	w := Window{Start: base, End: base.Add(40 * time.Minute)}

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"inside", base.Add(10 * time.Minute), base.Add(20 * time.Minute), true},
		{"covers window", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"straddles start", base.Add(-10 * time.Minute), base.Add(10 * time.Minute), true},
		{"straddles end", base.Add(30 * time.Minute), base.Add(50 * time.Minute), true},
		{"ends at window start", base.Add(-40 * time.Minute), base, false},
		{"starts at window end", base.Add(40 * time.Minute), base.Add(80 * time.Minute), false},
		{"before", base.Add(-2 * time.Hour), base.Add(-time.Hour), false},
		{"after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, w.Overlaps(tc.start, tc.end))
		})
	}
}

func TestWindowPair_FortyMinuteWindows(t *testing.T) {
	loc := mustLocation(t, "Europe/London")

	main, before, err := WindowPair("2026-02-03", "10:00", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 3, 10, 0, 0, 0, loc), main.Start)
	assert.Equal(t, time.Date(2026, 2, 3, 10, 40, 0, 0, loc), main.End)
	assert.Equal(t, time.Date(2026, 2, 3, 9, 20, 0, 0, loc), before.Start)
	assert.Equal(t, time.Date(2026, 2, 3, 10, 0, 0, 0, loc), before.End)
	assert.Equal(t, main.Start, before.End)
}

func TestWindowPair_BadInputIsInputError(t *testing.T) {
	loc := mustLocation(t, "Europe/London")

	for _, input := range [][2]string{
		{"not-a-date", "10:00"},
		{"2026-02-03", "25:99"},
		{"", ""},
	} {
		_, _, err := WindowPair(input[0], input[1], loc)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr, "input %v", input)
	}
}

func TestParseFeedTime_NormalizesOffsets(t *testing.T) {
	loc := mustLocation(t, "Europe/London")

	utc, ok := parseFeedTime("2026-02-03T10:00:00Z", loc)
	require.True(t, ok)
	offset, ok := parseFeedTime("2026-02-03T11:00:00+01:00", loc)
	require.True(t, ok)

	assert.True(t, utc.Equal(offset))
	assert.Equal(t, loc, utc.Location())

	_, ok = parseFeedTime("yesterday-ish", loc)
	assert.False(t, ok)
	_, ok = parseFeedTime("", loc)
	assert.False(t, ok)
}
