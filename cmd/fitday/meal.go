package fitday

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/catalog"
	"github.com/saadjs/fitday/internal/model"
	"github.com/saadjs/fitday/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meals",
}

var (
	mealName     string
	mealCalories int
	mealCategory string
	mealFood     string
	mealDay      string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meal to today's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := buildMealDraft(cmd)
		if err != nil {
			return err
		}
		return withStore(func(s *session) error {
			rec, err := s.store.AddMealRecord(draft)
			if err != nil {
				return err
			}
			out(cmd, "Added meal %d: %s (%d kcal, %s)\n", rec.ID, rec.Name, rec.Calories, catalog.CategoryLabel(rec.Category))
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for today or --day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *session) error {
			day := dayOrToday(s, mealDay)
			items := s.store.MealRecordsOn(day)
			out(cmd, "ID\tTIME\tCATEGORY\tKCAL\tNAME\n")
			total := 0
			for _, m := range items {
				out(cmd, "%d\t%s\t%s\t%d\t%s\n", m.ID, m.Timestamp.Local().Format("15:04"), m.Category, m.Calories, m.Name)
				total += m.Calories
			}
			out(cmd, "Total %s: %d kcal\n", day, total)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal from today or --day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("meal id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *session) error {
			if err := s.store.DeleteMealRecordOn(dayOrToday(s, mealDay), id); err != nil {
				return err
			}
			out(cmd, "Deleted meal %d\n", id)
			return nil
		})
	},
}

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the built-in food catalog",
}

var foodCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List built-in foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		out(cmd, "KCAL\tGROUP\tNAME\n")
		for _, f := range catalog.Foods() {
			out(cmd, "%d\t%s\t%s\n", f.Calories, f.Group, f.Name)
		}
		return nil
	},
}

// buildMealDraft fills name, calories and category from --food unless they
// are given explicitly.
func buildMealDraft(cmd *cobra.Command) (service.MealDraft, error) {
	draft := service.MealDraft{
		Name:     mealName,
		Calories: mealCalories,
		Category: model.MealCategory(mealCategory),
	}
	if strings.TrimSpace(mealFood) == "" {
		return draft, nil
	}
	food, ok := catalog.FindFood(mealFood)
	if !ok {
		return service.MealDraft{}, fmt.Errorf("unknown food %q; see `fitday food catalog`", mealFood)
	}
	if !cmd.Flags().Changed("name") {
		draft.Name = food.Name
	}
	if !cmd.Flags().Changed("calories") {
		draft.Calories = food.Calories
	}
	if !cmd.Flags().Changed("category") {
		draft.Category = food.Group.SuggestedCategory()
	}
	return draft, nil
}

func dayOrToday(s *session, day string) string {
	if strings.TrimSpace(day) == "" {
		return s.store.Today()
	}
	return strings.TrimSpace(day)
}

func init() {
	rootCmd.AddCommand(mealCmd, foodCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)
	foodCmd.AddCommand(foodCatalogCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories (1-5000)")
	mealAddCmd.Flags().StringVar(&mealCategory, "category", "", "Category: breakfast, lunch, dinner or snack")
	mealAddCmd.Flags().StringVar(&mealFood, "food", "", "Fill name, calories and category from the food catalog")
	mealListCmd.Flags().StringVar(&mealDay, "day", "", "Day key YYYY-MM-DD (default today)")
	mealDeleteCmd.Flags().StringVar(&mealDay, "day", "", "Day key YYYY-MM-DD (default today)")
}
