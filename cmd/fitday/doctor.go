package fitday

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			report, err := s.store.RunDoctor()
			if err != nil {
				return err
			}
			out(cmd, "Profile present: %t\n", report.ProfilePresent)
			out(cmd, "Meal days: %d | Exercise days: %d\n", report.MealDays, report.ExerciseDays)
			out(cmd, "Invalid profile: %t\n", report.InvalidProfile)
			out(cmd, "Malformed day keys: %d\n", report.MalformedDayKeys)
			out(cmd, "Duplicate ids: %d\n", report.DuplicateIDs)
			out(cmd, "Invalid records: %d\n", report.InvalidRecords)
			out(cmd, "Unreadable entries: %d\n", report.UnreadableEntries)
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
