// Package catalog holds the built-in food and exercise reference tables.
package catalog

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitday/internal/model"
)

type FoodGroup string

const (
	GroupBreakfast FoodGroup = "breakfast"
	GroupMain      FoodGroup = "main"
	GroupSalad     FoodGroup = "salad"
	GroupSnack     FoodGroup = "snack"
	GroupDrink     FoodGroup = "drink"
)

type Food struct {
	Name     string
	Calories int
	Group    FoodGroup
}

// Exercise is one catalog entry. CaloriesPerRep is only meaningful for
// repetition-based entries.
type Exercise struct {
	Slug           string
	Name           string
	MET            float64
	Type           model.MeasurementType
	CaloriesPerRep float64
	Description    string
}

var foods = []Food{
	{"Menemen (1 serving)", 180, GroupBreakfast},
	{"White cheese (50g)", 135, GroupBreakfast},
	{"Kashar cheese (50g)", 190, GroupBreakfast},
	{"Olives (10)", 50, GroupBreakfast},
	{"Boiled egg (1)", 78, GroupBreakfast},
	{"Omelette (2 eggs)", 154, GroupBreakfast},
	{"Simit (1)", 290, GroupBreakfast},
	{"White bread (1 slice)", 80, GroupBreakfast},
	{"Whole wheat bread (1 slice)", 70, GroupBreakfast},
	{"Honey (1 tbsp)", 64, GroupBreakfast},
	{"Jam (1 tbsp)", 56, GroupBreakfast},
	{"Butter (10g)", 72, GroupBreakfast},

	{"White bean stew (1 serving)", 320, GroupMain},
	{"Lentil soup (1 bowl)", 180, GroupMain},
	{"Rice pilaf (1 serving)", 250, GroupMain},
	{"Pasta (1 serving)", 280, GroupMain},
	{"Meatballs (4)", 400, GroupMain},
	{"Grilled chicken breast (150g)", 165, GroupMain},
	{"Grilled fish (150g)", 180, GroupMain},
	{"Beef doner (1 serving)", 450, GroupMain},
	{"Chicken doner (1 serving)", 380, GroupMain},
	{"Lahmacun (1)", 230, GroupMain},
	{"Pide (1 slice)", 280, GroupMain},
	{"Karniyarik (1 serving)", 350, GroupMain},
	{"Imam bayildi (1 serving)", 280, GroupMain},
	{"Manti (1 serving)", 420, GroupMain},
	{"Stuffed vine leaves (10)", 250, GroupMain},

	{"Shepherd's salad (1 serving)", 120, GroupSalad},
	{"Cacik (1 bowl)", 95, GroupSalad},
	{"Haydari (1 serving)", 180, GroupSalad},
	{"Hummus (100g)", 166, GroupSalad},
	{"Green salad (1 serving)", 45, GroupSalad},

	{"Banana (1)", 89, GroupSnack},
	{"Apple (1)", 95, GroupSnack},
	{"Orange (1)", 62, GroupSnack},
	{"Grapes (1 bowl)", 104, GroupSnack},
	{"Yogurt (1 bowl)", 150, GroupSnack},
	{"Ayran (1 glass)", 50, GroupSnack},
	{"Walnuts (30g)", 196, GroupSnack},
	{"Almonds (30g)", 170, GroupSnack},
	{"Hazelnuts (30g)", 180, GroupSnack},
	{"Crackers (5)", 100, GroupSnack},
	{"Chocolate (1 small)", 220, GroupSnack},

	{"Tea (1 glass, unsweetened)", 2, GroupDrink},
	{"Tea (1 glass, 1 sugar)", 22, GroupDrink},
	{"Turkish coffee (unsweetened)", 5, GroupDrink},
	{"Turkish coffee (sweetened)", 45, GroupDrink},
	{"Cola (330ml)", 139, GroupDrink},
	{"Fruit juice (200ml)", 90, GroupDrink},
	{"Water", 0, GroupDrink},
}

var exercises = []Exercise{
	{Slug: "push-up", Name: "Push-up", MET: 8.0, Type: model.MeasureRepetition, CaloriesPerRep: 0.5, Description: "Chest and arms"},
	{Slug: "sit-up", Name: "Sit-up", MET: 8.0, Type: model.MeasureRepetition, CaloriesPerRep: 0.4, Description: "Abdominals"},
	{Slug: "squat", Name: "Squat", MET: 8.0, Type: model.MeasureRepetition, CaloriesPerRep: 0.6, Description: "Legs and glutes"},
	{Slug: "burpee", Name: "Burpee", MET: 10.0, Type: model.MeasureRepetition, CaloriesPerRep: 1.2, Description: "Full body"},
	{Slug: "plank", Name: "Plank", MET: 5.0, Type: model.MeasureDuration, Description: "Core hold"},

	{Slug: "walk", Name: "Walking (moderate)", MET: 3.5, Type: model.MeasureDuration, Description: "Light cardio"},
	{Slug: "walk-brisk", Name: "Walking (brisk)", MET: 5.0, Type: model.MeasureDuration, Description: "Steady cardio"},
	{Slug: "run-easy", Name: "Running (easy)", MET: 7.0, Type: model.MeasureDuration, Description: "Moderate cardio"},
	{Slug: "run", Name: "Running (moderate)", MET: 9.0, Type: model.MeasureDuration, Description: "Hard cardio"},
	{Slug: "run-fast", Name: "Running (fast)", MET: 11.5, Type: model.MeasureDuration, Description: "Very hard cardio"},
	{Slug: "cycle-easy", Name: "Cycling (light)", MET: 4.0, Type: model.MeasureDuration, Description: "Easy riding"},
	{Slug: "cycle", Name: "Cycling (moderate)", MET: 6.8, Type: model.MeasureDuration, Description: "Moderate riding"},
	{Slug: "cycle-hard", Name: "Cycling (vigorous)", MET: 10.0, Type: model.MeasureDuration, Description: "Training ride"},
	{Slug: "jump-rope", Name: "Jump rope", MET: 11.0, Type: model.MeasureDuration, Description: "High intensity cardio"},
	{Slug: "swim", Name: "Swimming (moderate)", MET: 7.0, Type: model.MeasureDuration, Description: "Full body cardio"},
	{Slug: "dance", Name: "Dancing", MET: 5.5, Type: model.MeasureDuration, Description: "Fun cardio"},
	{Slug: "aerobics", Name: "Aerobics", MET: 7.0, Type: model.MeasureDuration, Description: "Group class"},

	{Slug: "yoga", Name: "Yoga (light)", MET: 2.5, Type: model.MeasureDuration, Description: "Flexibility and relaxation"},
	{Slug: "yoga-power", Name: "Yoga (power)", MET: 4.0, Type: model.MeasureDuration, Description: "Strength and balance"},
	{Slug: "pilates", Name: "Pilates", MET: 3.0, Type: model.MeasureDuration, Description: "Core strength"},
	{Slug: "stretch", Name: "Stretching", MET: 2.3, Type: model.MeasureDuration, Description: "Light activity"},
}

var categoryLabels = map[model.MealCategory]string{
	model.CategoryBreakfast: "Breakfast",
	model.CategoryLunch:     "Lunch",
	model.CategoryDinner:    "Dinner",
	model.CategorySnack:     "Snack",
}

// Foods returns the food table in declaration order.
func Foods() []Food {
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// Exercises returns the exercise table in declaration order.
func Exercises() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

func ExerciseBySlug(slug string) (Exercise, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, e := range exercises {
		if e.Slug == slug {
			return e, nil
		}
	}
	return Exercise{}, fmt.Errorf("unknown exercise %q", slug)
}

// FindFood matches a food by case-insensitive name.
func FindFood(name string) (Food, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range foods {
		if strings.ToLower(f.Name) == name {
			return f, true
		}
	}
	return Food{}, false
}

func CategoryLabel(c model.MealCategory) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// SuggestedCategory is the meal category a food from g is logged under by default.
func (g FoodGroup) SuggestedCategory() model.MealCategory {
	switch g {
	case GroupBreakfast:
		return model.CategoryBreakfast
	case GroupMain, GroupSalad:
		return model.CategoryLunch
	case GroupSnack, GroupDrink:
		return model.CategorySnack
	}
	return model.CategorySnack
}
