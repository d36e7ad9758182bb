package fitday

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/catalog"
	"github.com/saadjs/fitday/internal/model"
	"github.com/saadjs/fitday/internal/service"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and review exercise",
}

var (
	exerciseSlug  string
	exerciseValue int
	exerciseDay   string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a catalog exercise to today's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := catalog.ExerciseBySlug(exerciseSlug)
		if err != nil {
			return fmt.Errorf("%w; see `fitday exercise catalog`", err)
		}
		if exerciseValue < 1 || exerciseValue > 1000 {
			return fmt.Errorf("--value must be between 1 and 1000")
		}
		return withStore(func(s *session) error {
			if err := requireProfile(s); err != nil {
				return err
			}
			p, _ := s.store.GetProfile()
			kcal := s.engine.ExerciseCalories(entry, p.Weight, exerciseValue)
			rec, err := s.store.AddExerciseRecord(service.ExerciseDraft{
				Name:           entry.Name,
				Duration:       exerciseValue,
				Type:           entry.Type,
				CaloriesBurned: kcal,
			})
			if err != nil {
				return err
			}
			out(cmd, "Added exercise %d: %s %d %s (%d kcal)\n", rec.ID, rec.Name, rec.Duration, unitFor(rec.Type), rec.CaloriesBurned)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise for today or --day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			day := dayOrToday(s, exerciseDay)
			items := s.store.ExerciseRecordsOn(day)
			out(cmd, "ID\tTIME\tAMOUNT\tKCAL_BURNED\tNAME\n")
			total := 0
			for _, e := range items {
				out(cmd, "%d\t%s\t%d %s\t%d\t%s\n", e.ID, e.Timestamp.Local().Format("15:04"), e.Duration, unitFor(e.Type), e.CaloriesBurned, e.Name)
				total += e.CaloriesBurned
			}
			out(cmd, "Total burned %s: %d kcal\n", day, total)
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise from today or --day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *session) error {
			if err := s.store.DeleteExerciseRecordOn(dayOrToday(s, exerciseDay), id); err != nil {
				return err
			}
			out(cmd, "Deleted exercise %d\n", id)
			return nil
		})
	},
}

var exerciseCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List built-in exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		out(cmd, "SLUG\tMET\tTYPE\tNAME\n")
		for _, e := range catalog.Exercises() {
			out(cmd, "%s\t%.1f\t%s\t%s\n", e.Slug, e.MET, e.Type, e.Name)
		}
		return nil
	},
}

func unitFor(m model.MeasurementType) string {
	switch m {
	case model.MeasureRepetition:
		return "reps"
	case model.MeasureDuration:
		return "min"
	}
	return string(m)
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseDeleteCmd, exerciseCatalogCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseSlug, "type", "", "Exercise slug from `fitday exercise catalog`")
	exerciseAddCmd.Flags().IntVar(&exerciseValue, "value", 0, "Minutes for duration exercises, repetitions otherwise")
	_ = exerciseAddCmd.MarkFlagRequired("type")
	_ = exerciseAddCmd.MarkFlagRequired("value")
	exerciseListCmd.Flags().StringVar(&exerciseDay, "day", "", "Day key YYYY-MM-DD (default today)")
	exerciseDeleteCmd.Flags().StringVar(&exerciseDay, "day", "", "Day key YYYY-MM-DD (default today)")
}
