package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitday/internal/model"
)

type MealDraft struct {
	Name     string             `validate:"required"`
	Calories int                `validate:"gte=1,lte=5000"`
	Category model.MealCategory `validate:"required,oneof=breakfast lunch dinner snack"`
}

// AddMealRecord appends a meal to today's bucket and returns the stored record.
func (s *Store) AddMealRecord(draft MealDraft) (model.MealRecord, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Category = model.MealCategory(strings.ToLower(strings.TrimSpace(string(draft.Category))))
	if err := checkStruct("meal", draft); err != nil {
		return model.MealRecord{}, err
	}
	rec, err := appendToday(s, KeyMeals, func(id int64) model.MealRecord {
		return model.MealRecord{
			ID:        id,
			Name:      draft.Name,
			Calories:  draft.Calories,
			Category:  draft.Category,
			Timestamp: s.clock.Now(),
		}
	})
	if err != nil {
		return model.MealRecord{}, fmt.Errorf("add meal: %w", err)
	}
	return rec, nil
}

// DeleteMealRecord removes id from today's bucket.
func (s *Store) DeleteMealRecord(id int64) error {
	return s.DeleteMealRecordOn(s.Today(), id)
}

func (s *Store) DeleteMealRecordOn(day string, id int64) error {
	if err := removeFromDay[model.MealRecord](s, KeyMeals, day, id); err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	return nil
}

func (s *Store) TodayMealRecords() []model.MealRecord {
	return s.MealRecordsOn(s.Today())
}

// MealRecordsOn lists a day's meals in insertion order. An invalid day key
// yields an empty list.
func (s *Store) MealRecordsOn(day string) []model.MealRecord {
	if !validDayKey(day) {
		return []model.MealRecord{}
	}
	return queryBucket[model.MealRecord](s, KeyMeals, day)
}

func (s *Store) TodayTotalCaloriesConsumed() int {
	total := 0
	for _, m := range s.TodayMealRecords() {
		total += m.Calories
	}
	return total
}

func (s *Store) TodayCaloriesByCategory(category model.MealCategory) int {
	total := 0
	for _, m := range s.TodayMealRecords() {
		if m.Category == category {
			total += m.Calories
		}
	}
	return total
}
