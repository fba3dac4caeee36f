package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"squash-cli/availability"
	"squash-cli/storage"
)

func parseDateInputInLocation(input string, loc *time.Location) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	now := time.Now().In(loc)
	switch strings.ToLower(input) {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}

func lookupFacility(alias string) (storage.Facility, error) {
	facilities, err := storage.LoadFacilities()
	if err != nil {
		return storage.Facility{}, err
	}
	facility, ok := storage.FindFacilityByAlias(facilities, alias)
	if !ok {
		return storage.Facility{}, fmt.Errorf("facility alias %q not found", alias)
	}
	return facility, nil
}

func normalizeFacilityTimezone(tz string) string {
	if strings.TrimSpace(tz) == "" {
		return storage.DefaultFacilityTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return storage.DefaultFacilityTimezone
	}
	return tz
}

func facilityLocation(tz string) *time.Location {
	tz = normalizeFacilityTimezone(tz)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func sortedCourtNames(courts map[string]availability.CourtAvailability) []string {
	names := make([]string, 0, len(courts))
	for name := range courts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
