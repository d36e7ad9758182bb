// Package dashboard composes the day view shown by `fitday today` from the
// record store and the metrics engine.
package dashboard

import (
	"errors"
	"math/rand/v2"

	"github.com/saadjs/fitday/internal/calc"
	"github.com/saadjs/fitday/internal/model"
)

var ErrNoProfile = errors.New("no profile saved; run `fitday profile set` first")

type Band string

const (
	BandOK   Band = "ok"
	BandNear Band = "near"
	BandOver Band = "over"
)

type MotivationKind string

const (
	MotivationExercised MotivationKind = "exercised"
	MotivationOnTarget  MotivationKind = "on_target"
	MotivationUnder     MotivationKind = "under_target"
	MotivationOver      MotivationKind = "over_target"
	MotivationWelcome   MotivationKind = "welcome"
)

var messages = map[MotivationKind][]string{
	MotivationOnTarget: {
		"Great going, you are very close to your goal!",
		"Excellent, a well balanced day!",
		"Superb, keep this pace!",
		"Bravo, you hit your target!",
		"Incredible, right on the mark!",
	},
	MotivationUnder: {
		"Don't forget to eat a bit more today!",
		"Keep your energy up, remember to take in calories!",
		"Give your body the energy it needs!",
		"Try adding a healthy snack!",
	},
	MotivationOver: {
		"You went a little over, tomorrow you can be more careful!",
		"A bit over the limit, but don't worry, stay balanced!",
		"You can balance the extra calories with exercise!",
		"Eat a little lighter tomorrow to even things out!",
	},
	MotivationExercised: {
		"Great workout, you outdid yourself!",
		"You are training, keep it up with pride!",
		"Exercise is an investment in your health!",
		"Awesome, you are living an active life!",
	},
	MotivationWelcome: {
		"Good morning, today will be a great day!",
		"Hello, wishing you a healthy day!",
		"Welcome, ready to reach your goals?",
		"Hi, you are in shape today too!",
	},
}

// Source is the slice of the record store the composer reads.
type Source interface {
	GetProfile() (model.Profile, bool)
	GetSettings() model.Settings
	Today() string
	TodayTotalCaloriesConsumed() int
	TodayTotalCaloriesBurned() int
	TodayCaloriesByCategory(category model.MealCategory) int
}

type CategoryTotal struct {
	Category model.MealCategory `json:"category"`
	Label    string             `json:"label"`
	Calories int                `json:"calories"`
}

type View struct {
	Day           string              `json:"day"`
	Name          string              `json:"name"`
	BMI           float64             `json:"bmi"`
	BMIClass      calc.BMIClass       `json:"bmiClass"`
	BMR           int                 `json:"bmr"`
	ActivityLevel model.ActivityLevel `json:"activityLevel"`
	Target        int                 `json:"target"`
	Consumed      int                 `json:"consumed"`
	Burned        int                 `json:"burned"`
	Net           int                 `json:"net"`
	Categories    []CategoryTotal     `json:"categories"`
	Percentage    float64             `json:"percentage"`
	Band          Band                `json:"band"`
	Motivation    MotivationKind      `json:"motivation"`
	Message       string              `json:"message"`
}

type Composer struct {
	engine *calc.Engine
	labels func(model.MealCategory) string
	pick   func(n int) int
}

// New returns a composer. labels maps a category to its display label and
// pick chooses an index in [0,n); nil uses math/rand.
func New(engine *calc.Engine, labels func(model.MealCategory) string, pick func(n int) int) *Composer {
	if pick == nil {
		pick = rand.IntN
	}
	if labels == nil {
		labels = func(c model.MealCategory) string { return string(c) }
	}
	return &Composer{engine: engine, labels: labels, pick: pick}
}

func (c *Composer) Compose(src Source) (View, error) {
	profile, ok := src.GetProfile()
	if !ok {
		return View{}, ErrNoProfile
	}
	level := src.GetSettings().ActivityLevel
	if level == "" {
		level = model.ActivitySedentary
	}

	v := View{
		Day:           src.Today(),
		Name:          profile.Name,
		ActivityLevel: level,
		Consumed:      src.TodayTotalCaloriesConsumed(),
		Burned:        src.TodayTotalCaloriesBurned(),
	}
	v.BMI = c.engine.BodyMassIndex(profile.Weight, float64(profile.Height))
	v.BMIClass = c.engine.BMICategory(v.BMI)
	v.BMR = c.engine.BasalMetabolicRate(profile.Weight, float64(profile.Height), profile.Age, profile.Gender)
	v.Target = c.engine.DailyCalorieNeed(v.BMR, level)
	v.Net = c.engine.NetCalories(v.Consumed, v.Burned)
	v.Percentage = c.engine.CaloriePercentage(float64(v.Net), float64(v.Target))
	v.Band = BandFor(v.Percentage)
	for _, cat := range model.MealCategories {
		v.Categories = append(v.Categories, CategoryTotal{Category: cat, Label: c.labels(cat), Calories: src.TodayCaloriesByCategory(cat)})
	}
	v.Motivation = MotivationFor(v.Net, v.Target, v.Burned)
	pool := messages[v.Motivation]
	v.Message = pool[c.pick(len(pool))]
	return v, nil
}

// BandFor maps a calorie percentage to its progress colour band.
func BandFor(percentage float64) Band {
	switch {
	case percentage < 80:
		return BandOK
	case percentage < 100:
		return BandNear
	default:
		return BandOver
	}
}

// MotivationFor picks the message kind. Exercise wins over every calorie
// condition; a non-positive target only ever yields exercised or welcome.
func MotivationFor(net, target, burned int) MotivationKind {
	if burned > 0 {
		return MotivationExercised
	}
	if target <= 0 {
		return MotivationWelcome
	}
	n, t := float64(net), float64(target)
	diff := n - t
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff/t*100 < 10:
		return MotivationOnTarget
	case n < t-t*0.2:
		return MotivationUnder
	case n > t+t*0.2:
		return MotivationOver
	default:
		return MotivationWelcome
	}
}
