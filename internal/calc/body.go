package calc

import (
	"math"

	"github.com/saadjs/fitday/internal/model"
)

type BMIClass struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	ColorHint string `json:"colorHint"`
	Advice    string `json:"advice"`
}

var (
	bmiUnderweight = BMIClass{Key: "underweight", Label: "Underweight", ColorHint: "#3498db", Advice: "Aim to gain weight"}
	bmiNormal      = BMIClass{Key: "normal", Label: "Normal", ColorHint: "#2ecc71", Advice: "Great, keep it up"}
	bmiOverweight  = BMIClass{Key: "overweight", Label: "Overweight", ColorHint: "#f39c12", Advice: "Aim to lose a little weight"}
	bmiObese       = BMIClass{Key: "obese", Label: "Obese", ColorHint: "#e74c3c", Advice: "Aim to lose weight"}
	bmiUnknown     = BMIClass{Key: "unknown", Label: "Unknown", ColorHint: "#95a5a6", Advice: "Save a valid profile to see your BMI"}
)

var activityFactors = map[model.ActivityLevel]float64{
	model.ActivitySedentary: 1.2,
	model.ActivityLight:     1.375,
	model.ActivityModerate:  1.55,
	model.ActivityActive:    1.725,
	model.ActivityExtreme:   1.9,
}

// BodyMassIndex returns weight / height(m)^2 rounded to one decimal.
func (e *Engine) BodyMassIndex(weightKg, heightCm float64) float64 {
	if !positive(weightKg, heightCm) {
		e.log.Warn("invalid weight or height for BMI", "weight_kg", weightKg, "height_cm", heightCm)
		return 0
	}
	m := heightCm / 100
	return round1(weightKg / (m * m))
}

// BMICategory classifies a BMI. Each boundary belongs to the higher class.
// A non-finite BMI is classed unknown.
func (e *Engine) BMICategory(bmi float64) BMIClass {
	switch {
	case math.IsNaN(bmi) || math.IsInf(bmi, 0):
		e.log.Warn("non-finite BMI", "bmi", bmi)
		return bmiUnknown
	case bmi < 18.5:
		return bmiUnderweight
	case bmi < 25:
		return bmiNormal
	case bmi < 30:
		return bmiOverweight
	default:
		return bmiObese
	}
}

// BasalMetabolicRate uses the revised Harris-Benedict equation.
func (e *Engine) BasalMetabolicRate(weightKg, heightCm float64, age int, gender model.Gender) int {
	if !positive(weightKg, heightCm, float64(age)) {
		e.log.Warn("invalid input for BMR", "weight_kg", weightKg, "height_cm", heightCm, "age", age)
		return 0
	}
	var bmr float64
	switch gender {
	case model.GenderMale:
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	case model.GenderFemale:
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	default:
		e.log.Warn("unknown gender for BMR", "gender", gender)
		return 0
	}
	return roundInt(bmr)
}

// DailyCalorieNeed scales BMR by the activity factor; unknown levels count as sedentary.
func (e *Engine) DailyCalorieNeed(bmr int, level model.ActivityLevel) int {
	if bmr <= 0 {
		e.log.Warn("invalid BMR for daily calorie need", "bmr", bmr)
		return 0
	}
	factor, ok := activityFactors[level]
	if !ok {
		if level != "" {
			e.log.Warn("unknown activity level, using sedentary", "activity_level", level)
		}
		factor = activityFactors[model.ActivitySedentary]
	}
	return roundInt(float64(bmr) * factor)
}

// ActivityLevelKnown reports whether level has a factor.
func ActivityLevelKnown(level model.ActivityLevel) bool {
	_, ok := activityFactors[level]
	return ok
}
