package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

type MealCategory string

const (
	CategoryBreakfast MealCategory = "breakfast"
	CategoryLunch     MealCategory = "lunch"
	CategoryDinner    MealCategory = "dinner"
	CategorySnack     MealCategory = "snack"
)

// MealCategories lists every category in display order.
var MealCategories = []MealCategory{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack}

func (c MealCategory) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack:
		return true
	}
	return false
}

// MeasurementType says whether an exercise value is minutes or repetitions.
type MeasurementType string

const (
	MeasureDuration   MeasurementType = "duration"
	MeasureRepetition MeasurementType = "repetition"
)

func (m MeasurementType) Valid() bool {
	switch m {
	case MeasureDuration, MeasureRepetition:
		return true
	}
	return false
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)

// ActivityLevels lists every level from least to most active.
var ActivityLevels = []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityExtreme}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityExtreme:
		return true
	}
	return false
}

type Profile struct {
	Name    string    `json:"name" validate:"required,min=2"`
	Age     int       `json:"age" validate:"required,gte=10,lte=120"`
	Height  int       `json:"height" validate:"required,gte=100,lte=250"`
	Weight  float64   `json:"weight" validate:"required,gte=30,lte=300"`
	Gender  Gender    `json:"gender" validate:"required,oneof=male female"`
	SavedAt time.Time `json:"savedAt"`
}

type MealRecord struct {
	ID        int64        `json:"id" validate:"required"`
	Name      string       `json:"name" validate:"required"`
	Calories  int          `json:"calories" validate:"gte=1,lte=5000"`
	Category  MealCategory `json:"category" validate:"required,oneof=breakfast lunch dinner snack"`
	Timestamp time.Time    `json:"timestamp"`
}

type ExerciseRecord struct {
	ID             int64           `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Duration       int             `json:"duration" validate:"gt=0"`
	Type           MeasurementType `json:"type" validate:"required,oneof=duration repetition"`
	CaloriesBurned int             `json:"caloriesBurned" validate:"gte=0"`
	Timestamp      time.Time       `json:"timestamp"`
}

// MealBuckets maps a YYYY-MM-DD day key to that day's meals in creation order.
type MealBuckets map[string][]MealRecord

// ExerciseBuckets maps a YYYY-MM-DD day key to that day's exercises in creation order.
type ExerciseBuckets map[string][]ExerciseRecord

type Settings struct {
	ActivityLevel ActivityLevel `json:"activityLevel,omitempty"`
}

// Snapshot is the export document. Import accepts the same shape; nil fields are left untouched.
type Snapshot struct {
	Profile    *Profile        `json:"profile"`
	Meals      MealBuckets     `json:"meals"`
	Exercises  ExerciseBuckets `json:"exercises"`
	ExportDate time.Time       `json:"exportDate"`
}

func (m MealRecord) RecordID() int64     { return m.ID }
func (e ExerciseRecord) RecordID() int64 { return e.ID }
