package fitday

import (
	"fmt"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Plan weight goals",
}

var (
	goalCurrent float64
	goalTarget  float64
	goalDays    int
)

var goalProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the daily calorie change needed to reach a target weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			current := goalCurrent
			if !cmd.Flags().Changed("current") {
				p, ok := s.store.GetProfile()
				if !ok {
					return fmt.Errorf("--current is required when no profile is saved")
				}
				current = p.Weight
			}
			proj := s.engine.WeightGoalProjection(current, goalTarget, goalDays)
			out(cmd, "Weight change: %+.1f kg over %d days\n", proj.WeightDelta, goalDays)
			out(cmd, "Total calorie change: %+d kcal\n", proj.TotalCalorieDelta)
			out(cmd, "Daily calorie change: %+d kcal (%s)\n", proj.DailyCalorieDelta, proj.Direction)
			out(cmd, "%s\n", proj.Advice)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalProjectCmd)

	goalProjectCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Current weight in kg (default: profile weight)")
	goalProjectCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target weight in kg")
	goalProjectCmd.Flags().IntVar(&goalDays, "days", 0, "Days to reach the target")
	_ = goalProjectCmd.MarkFlagRequired("target")
	_ = goalProjectCmd.MarkFlagRequired("days")
}
