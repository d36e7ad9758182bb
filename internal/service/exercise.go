package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitday/internal/model"
)

// ExerciseDraft carries the calories already computed by the caller; the
// store never recomputes them.
type ExerciseDraft struct {
	Name           string                `validate:"required"`
	Duration       int                   `validate:"gt=0"`
	Type           model.MeasurementType `validate:"required,oneof=duration repetition"`
	CaloriesBurned int                   `validate:"gt=0"`
}

func (s *Store) AddExerciseRecord(draft ExerciseDraft) (model.ExerciseRecord, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Type = model.MeasurementType(strings.ToLower(strings.TrimSpace(string(draft.Type))))
	if err := checkStruct("exercise", draft); err != nil {
		return model.ExerciseRecord{}, err
	}
	rec, err := appendToday(s, KeyExercises, func(id int64) model.ExerciseRecord {
		return model.ExerciseRecord{
			ID:             id,
			Name:           draft.Name,
			Duration:       draft.Duration,
			Type:           draft.Type,
			CaloriesBurned: draft.CaloriesBurned,
			Timestamp:      s.clock.Now(),
		}
	})
	if err != nil {
		return model.ExerciseRecord{}, fmt.Errorf("add exercise: %w", err)
	}
	return rec, nil
}

func (s *Store) DeleteExerciseRecord(id int64) error {
	return s.DeleteExerciseRecordOn(s.Today(), id)
}

func (s *Store) DeleteExerciseRecordOn(day string, id int64) error {
	if err := removeFromDay[model.ExerciseRecord](s, KeyExercises, day, id); err != nil {
		return fmt.Errorf("delete exercise %d: %w", id, err)
	}
	return nil
}

func (s *Store) TodayExerciseRecords() []model.ExerciseRecord {
	return s.ExerciseRecordsOn(s.Today())
}

func (s *Store) ExerciseRecordsOn(day string) []model.ExerciseRecord {
	if !validDayKey(day) {
		return []model.ExerciseRecord{}
	}
	return queryBucket[model.ExerciseRecord](s, KeyExercises, day)
}

func (s *Store) TodayTotalCaloriesBurned() int {
	total := 0
	for _, e := range s.TodayExerciseRecords() {
		total += e.CaloriesBurned
	}
	return total
}
