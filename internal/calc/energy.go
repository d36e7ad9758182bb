package calc

import (
	"math"

	"github.com/saadjs/fitday/internal/catalog"
	"github.com/saadjs/fitday/internal/model"
)

type Direction string

const (
	DirectionLosing      Direction = "losing"
	DirectionGaining     Direction = "gaining"
	DirectionMaintaining Direction = "maintaining"
)

// AggressiveDailyDelta is the daily kcal change above which a plan is flagged.
const AggressiveDailyDelta = 1000

type Projection struct {
	WeightDelta       float64   `json:"weightDelta"`
	TotalCalorieDelta int       `json:"totalCalorieDelta"`
	DailyCalorieDelta int       `json:"dailyCalorieDelta"`
	Direction         Direction `json:"direction"`
	Aggressive        bool      `json:"aggressive"`
	Advice            string    `json:"advice"`
}

// ExerciseCalories estimates calories burned for value minutes or repetitions
// of the catalog entry. Without a usable body weight it returns 0 for both
// measurement types.
func (e *Engine) ExerciseCalories(entry catalog.Exercise, weightKg float64, value int) int {
	if value <= 0 {
		e.log.Warn("invalid exercise value", "exercise", entry.Slug, "value", value)
		return 0
	}
	if !positive(weightKg) {
		e.log.Warn("missing or invalid body weight for exercise", "exercise", entry.Slug, "weight_kg", weightKg)
		return 0
	}
	switch entry.Type {
	case model.MeasureDuration:
		if !positive(entry.MET) {
			e.log.Warn("invalid MET for exercise", "exercise", entry.Slug, "met", entry.MET)
			return 0
		}
		return roundInt(entry.MET * weightKg * float64(value) / 60)
	case model.MeasureRepetition:
		if !positive(entry.CaloriesPerRep) {
			e.log.Warn("invalid calories per rep", "exercise", entry.Slug, "calories_per_rep", entry.CaloriesPerRep)
			return 0
		}
		return roundInt(float64(value) * entry.CaloriesPerRep)
	default:
		e.log.Warn("unknown measurement type", "exercise", entry.Slug, "type", entry.Type)
		return 0
	}
}

func (e *Engine) NetCalories(consumed, burned int) int {
	return consumed - burned
}

// CaloriePercentage returns current/target as a percentage clamped to [0, 150].
func (e *Engine) CaloriePercentage(current, target float64) float64 {
	if !positive(target) || math.IsNaN(current) {
		return 0
	}
	return math.Min(math.Max(current/target*100, 0), 150)
}

func (e *Engine) WeightGoalProjection(currentKg, targetKg float64, days int) Projection {
	if !positive(currentKg, targetKg, float64(days)) {
		e.log.Warn("invalid weight goal input", "current_kg", currentKg, "target_kg", targetKg, "days", days)
		return Projection{Direction: DirectionMaintaining}
	}
	delta := targetKg - currentKg
	total := delta * KcalPerKg
	daily := total / float64(days)

	p := Projection{
		WeightDelta:       round1(delta),
		TotalCalorieDelta: roundInt(total),
		DailyCalorieDelta: roundInt(daily),
	}
	switch {
	case delta < 0:
		p.Direction = DirectionLosing
	case delta > 0:
		p.Direction = DirectionGaining
	default:
		p.Direction = DirectionMaintaining
	}
	p.Aggressive = math.Abs(daily) > AggressiveDailyDelta
	if p.Aggressive {
		p.Advice = "Goal is too aggressive, spread it over a longer period"
	} else {
		p.Advice = "Goal looks achievable"
	}
	return p
}
