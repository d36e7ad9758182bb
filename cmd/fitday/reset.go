package fitday

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the profile, all meals, all exercises and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("reset deletes all data; pass --yes to confirm")
		}
		return withStore(func(s *session) error {
			if err := s.store.ClearAllData(); err != nil {
				return err
			}
			out(cmd, "All data cleared\n")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deleting all data")
}
