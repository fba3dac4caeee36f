package cmd

import (
	"context"
	"fmt"
	"strings"

	"squash-cli/availability"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var date string
	var startTime string
	var facilityAlias string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a 40-minute squash slot and the 40 minutes before it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if startTime == "" {
				return fmt.Errorf("--start-time is required")
			}
			if facilityAlias == "" {
				facilityAlias = cfg.DefaultFacility
			}

			facility, err := lookupFacility(facilityAlias)
			if err != nil {
				return err
			}
			location := facilityLocation(facility.TimeZone)

			target, err := parseDateInputInLocation(date, location)
			if err != nil {
				return err
			}

			checker := availability.NewChecker(client, []string{facility.ID}, location, facility.BookingURL)
			report, err := checker.Check(context.Background(), target.Format("2006-01-02"), startTime)
			if err != nil {
				if outputJSON {
					return writeJSON(availability.FailureReport(err, facility.BookingURL))
				}
				return err
			}

			if outputJSON {
				return writeJSON(report)
			}
			if outputCompact {
				renderReportCompact(report)
				return nil
			}
			renderReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Target date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&startTime, "start-time", "", "Slot start time (HH:MM)")
	cmd.Flags().StringVar(&facilityAlias, "facility", "", "Saved facility alias")
	return cmd
}

func renderReport(report availability.Report) {
	divider := strings.Repeat("=", 60)
	fmt.Println(divider)
	fmt.Println("SQUASH COURT AVAILABILITY REPORT")
	fmt.Println(divider)

	renderWindow("Main Slot", report.TimeSlots.Main, report.MainCourts)
	renderWindow("Before Slot", report.TimeSlots.Before, report.BeforeCourts)

	fmt.Println("\nCourts available for both slots:")
	common := availability.AvailableForBoth(report.MainCourts, report.BeforeCourts)
	if len(common) == 0 {
		fmt.Println("  none")
	}
	for _, name := range common {
		fmt.Printf("  %s\n", name)
	}

	fmt.Printf("\n%s\n%s\n", report.Message, report.BookingURL)
}

func renderWindow(label string, times availability.SlotTimes, courts map[string]availability.CourtAvailability) {
	fmt.Printf("\n%s (%s-%s):\n", label, times.Start, times.End)
	if len(courts) == 0 {
		fmt.Println("  No squash slots found.")
		return
	}

	for _, name := range sortedCourtNames(courts) {
		court := courts[name]
		if court.Available {
			fmt.Printf("  %s - %d available\n", name, court.RemainingUses)
		} else {
			fmt.Printf("  %s - fully booked\n", name)
		}
	}

	if availability.IsPartialBooking(courts) {
		fmt.Println("  Note: the feed does not say which court is free; check the booking calendar.")
	}
}

func renderReportCompact(report availability.Report) {
	fmt.Printf("main %d | before %d | both: %s\n",
		report.MainSlotAvailable,
		report.BeforeSlotAvailable,
		strings.Join(availability.AvailableForBoth(report.MainCourts, report.BeforeCourts), " "))
}
