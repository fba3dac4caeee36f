package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Facility is one saved leisure centre: the feed's facility id for the
// squash resource class, the public calendar page, and the centre's
// timezone.
type Facility struct {
	ID         string `json:"id"`
	Alias      string `json:"alias"`
	Name       string `json:"name"`
	TimeZone   string `json:"timezone"`
	BookingURL string `json:"booking_url"`
}

type FacilitiesFile struct {
	Facilities []Facility `json:"facilities"`
}

const DefaultFacilityTimezone = "Europe/London"

// DefaultFacility is built in so the tool works with no saved catalog.
var DefaultFacility = Facility{
	ID:         "041A000005",
	Alias:      "alfreton",
	Name:       "Alfreton Leisure Centre",
	TimeZone:   DefaultFacilityTimezone,
	BookingURL: "https://placesleisure.gladstonego.cloud/book/calendar/041A000005",
}

func LoadFacilities() ([]Facility, error) {
	path, err := FacilitiesPath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Facility{}, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("facilities path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var payload FacilitiesFile
	if err := json.NewDecoder(file).Decode(&payload); err != nil {
		return nil, err
	}
	for i := range payload.Facilities {
		if payload.Facilities[i].TimeZone == "" {
			payload.Facilities[i].TimeZone = DefaultFacilityTimezone
		}
	}
	return payload.Facilities, nil
}

func SaveFacilities(facilities []Facility) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}

	path, err := FacilitiesPath()
	if err != nil {
		return err
	}

	sorted := make([]Facility, len(facilities))
	copy(sorted, facilities)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Alias) < strings.ToLower(sorted[j].Alias)
	})
	for i := range sorted {
		if sorted[i].TimeZone == "" {
			sorted[i].TimeZone = DefaultFacilityTimezone
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(FacilitiesFile{Facilities: sorted})
}

// FindFacilityByAlias checks the saved catalog first and falls back to the
// built-in default facility.
func FindFacilityByAlias(facilities []Facility, alias string) (Facility, bool) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, facility := range facilities {
		if strings.ToLower(facility.Alias) == needle {
			return facility, true
		}
	}
	if needle == "" || needle == DefaultFacility.Alias {
		return DefaultFacility, true
	}
	return Facility{}, false
}
