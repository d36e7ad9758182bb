package fitday

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/catalog"
	"github.com/saadjs/fitday/internal/dashboard"
)

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, exercise and calorie balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			view, err := dashboard.New(s.engine, catalog.CategoryLabel, nil).Compose(s.store)
			if err != nil {
				return err
			}
			if todayJSON {
				b, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal today view: %w", err)
				}
				out(cmd, "%s\n", b)
				return nil
			}
			out(cmd, "Date: %s\n", view.Day)
			out(cmd, "Hello %s. %s\n", view.Name, view.Message)
			out(cmd, "BMI: %.1f (%s) | BMR: %d kcal\n", view.BMI, view.BMIClass.Label, view.BMR)
			out(cmd, "Target (%s): %d kcal\n", view.ActivityLevel, view.Target)
			out(cmd, "Intake: %d kcal | Exercise: %d kcal | Net: %d kcal\n", view.Consumed, view.Burned, view.Net)
			for _, c := range view.Categories {
				out(cmd, "  %s: %d kcal\n", c.Label, c.Calories)
			}
			out(cmd, "Progress: %.0f%% (%s)\n", view.Percentage, view.Band)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print the day view as JSON")
}
