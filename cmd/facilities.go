package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"squash-cli/storage"

	"github.com/spf13/cobra"
)

func facilitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facilities",
		Short: "Manage saved facilities",
	}

	cmd.AddCommand(facilitiesListCmd())
	cmd.AddCommand(facilitiesAddCmd())
	cmd.AddCommand(facilitiesRemoveCmd())
	return cmd
}

func facilitiesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved facilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			facilities, err := storage.LoadFacilities()
			if err != nil {
				return err
			}
			if len(facilities) == 0 {
				facilities = []storage.Facility{storage.DefaultFacility}
			}

			sort.Slice(facilities, func(i, j int) bool {
				return strings.ToLower(facilities[i].Alias) < strings.ToLower(facilities[j].Alias)
			})

			if outputJSON {
				return writeJSON(facilities)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ALIAS\tNAME\tID\tTIMEZONE")
			}
			for _, facility := range facilities {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", facility.Alias, facility.Name, facility.ID, facility.TimeZone)
			}
			return writer.Flush()
		},
	}

	return cmd
}

func facilitiesAddCmd() *cobra.Command {
	var id string
	var alias string
	var name string
	var timezone string
	var bookingURL string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a saved facility",
		RunE: func(cmd *cobra.Command, args []string) error {
			alias = strings.TrimSpace(alias)
			if id == "" || alias == "" || name == "" {
				return fmt.Errorf("--id, --alias, and --name are required")
			}
			if timezone == "" {
				timezone = storage.DefaultFacilityTimezone
			}

			facilities, err := storage.LoadFacilities()
			if err != nil {
				return err
			}

			if _, ok := storage.FindFacilityByAlias(facilities, alias); ok {
				return fmt.Errorf("facility alias %q already exists", alias)
			}

			facilities = append(facilities, storage.Facility{
				ID:         id,
				Alias:      alias,
				Name:       name,
				TimeZone:   timezone,
				BookingURL: bookingURL,
			})

			if err := storage.SaveFacilities(facilities); err != nil {
				return err
			}

			fmt.Printf("Saved facility %s (%s).\n", alias, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Facility id from the slot feed")
	cmd.Flags().StringVar(&alias, "alias", "", "Short alias")
	cmd.Flags().StringVar(&name, "name", "", "Facility name")
	cmd.Flags().StringVar(&timezone, "timezone", storage.DefaultFacilityTimezone, "Facility timezone (IANA)")
	cmd.Flags().StringVar(&bookingURL, "booking-url", "", "Booking calendar URL")
	return cmd
}

func facilitiesRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <alias>",
		Short: "Remove a saved facility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := strings.TrimSpace(args[0])
			facilities, err := storage.LoadFacilities()
			if err != nil {
				return err
			}

			index := -1
			for i, facility := range facilities {
				if strings.EqualFold(facility.Alias, alias) {
					index = i
					break
				}
			}

			if index == -1 {
				return fmt.Errorf("facility alias %q not found", alias)
			}

			facilities = append(facilities[:index], facilities[index+1:]...)
			if err := storage.SaveFacilities(facilities); err != nil {
				return err
			}

			fmt.Printf("Removed facility %s.\n", alias)
			return nil
		},
	}

	return cmd
}
