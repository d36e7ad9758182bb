package fitday

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage fitday settings",
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (activity-level)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(strings.TrimSpace(args[0]))
		return withStore(func(s *session) error {
			st := s.store.GetSettings()
			switch key {
			case "activity-level":
				st.ActivityLevel = model.ActivityLevel(args[1])
			default:
				return fmt.Errorf("unknown setting %q (supported: activity-level)", args[0])
			}
			if err := s.store.SaveSettings(st); err != nil {
				return err
			}
			out(cmd, "Set %s\n", key)
			return nil
		})
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			st := s.store.GetSettings()
			level := string(st.ActivityLevel)
			if level == "" {
				level = string(model.ActivitySedentary) + " (default)"
			}
			out(cmd, "activity-level: %s\n", level)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd, settingsGetCmd)
}
