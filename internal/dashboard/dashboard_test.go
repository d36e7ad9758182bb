package dashboard_test

import (
	"errors"
	"testing"

	"github.com/saadjs/fitday/internal/calc"
	"github.com/saadjs/fitday/internal/catalog"
	"github.com/saadjs/fitday/internal/dashboard"
	"github.com/saadjs/fitday/internal/logger"
	"github.com/saadjs/fitday/internal/model"
)

type fakeSource struct {
	profile    *model.Profile
	settings   model.Settings
	byCategory map[model.MealCategory]int
	burned     int
}

func (f fakeSource) GetProfile() (model.Profile, bool) {
	if f.profile == nil {
		return model.Profile{}, false
	}
	return *f.profile, true
}
func (f fakeSource) GetSettings() model.Settings { return f.settings }
func (f fakeSource) Today() string               { return "2026-02-20" }
func (f fakeSource) TodayTotalCaloriesConsumed() int {
	total := 0
	for _, v := range f.byCategory {
		total += v
	}
	return total
}
func (f fakeSource) TodayTotalCaloriesBurned() int { return f.burned }
func (f fakeSource) TodayCaloriesByCategory(c model.MealCategory) int {
	return f.byCategory[c]
}

func newComposer() *dashboard.Composer {
	return dashboard.New(calc.New(logger.Nop()), catalog.CategoryLabel, func(int) int { return 0 })
}

func TestComposeRequiresProfile(t *testing.T) {
	t.Parallel()
	_, err := newComposer().Compose(fakeSource{})
	if !errors.Is(err, dashboard.ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestComposeDayView(t *testing.T) {
	t.Parallel()
	src := fakeSource{
		profile: &model.Profile{Name: "Ayse", Age: 30, Height: 175, Weight: 70, Gender: model.GenderMale},
		byCategory: map[model.MealCategory]int{
			model.CategoryBreakfast: 500,
			model.CategoryLunch:     700,
			model.CategoryDinner:    700,
		},
	}
	v, err := newComposer().Compose(src)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if v.BMI != 22.9 || v.BMIClass.Key != "normal" || v.BMR != 1696 || v.Target != 2035 {
		t.Fatalf("unexpected body figures: %+v", v)
	}
	if v.ActivityLevel != model.ActivitySedentary {
		t.Fatalf("expected sedentary default, got %s", v.ActivityLevel)
	}
	if v.Consumed != 1900 || v.Net != 1900 || v.Band != dashboard.BandNear {
		t.Fatalf("unexpected calorie figures: %+v", v)
	}
	if v.Motivation != dashboard.MotivationOnTarget || v.Message == "" {
		t.Fatalf("expected on-target message, got %s %q", v.Motivation, v.Message)
	}
	if len(v.Categories) != 4 || v.Categories[3].Category != model.CategorySnack || v.Categories[3].Calories != 0 {
		t.Fatalf("unexpected categories: %+v", v.Categories)
	}

	src.settings = model.Settings{ActivityLevel: model.ActivityActive}
	v, err = newComposer().Compose(src)
	if err != nil {
		t.Fatalf("compose active: %v", err)
	}
	if v.Target != 2926 {
		t.Fatalf("expected active target 2926, got %d", v.Target)
	}
}

func TestMotivationOrder(t *testing.T) {
	t.Parallel()
	cases := []struct {
		net, target, burned int
		want                dashboard.MotivationKind
	}{
		{net: 2000, target: 2000, burned: 300, want: dashboard.MotivationExercised},
		{net: 1850, target: 2000, want: dashboard.MotivationOnTarget},
		{net: 1500, target: 2000, want: dashboard.MotivationUnder},
		{net: 2500, target: 2000, want: dashboard.MotivationOver},
		{net: 1700, target: 2000, want: dashboard.MotivationWelcome},
		{net: 2300, target: 2000, want: dashboard.MotivationWelcome},
		{net: 500, target: 0, want: dashboard.MotivationWelcome},
	}
	for _, tc := range cases {
		if got := dashboard.MotivationFor(tc.net, tc.target, tc.burned); got != tc.want {
			t.Fatalf("MotivationFor(%d, %d, %d) = %s, want %s", tc.net, tc.target, tc.burned, got, tc.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	t.Parallel()
	if dashboard.BandFor(79.9) != dashboard.BandOK || dashboard.BandFor(80) != dashboard.BandNear || dashboard.BandFor(100) != dashboard.BandOver {
		t.Fatalf("unexpected band boundaries")
	}
}
