package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/saadjs/fitday/internal/model"
)

// ExportSnapshot returns every stored profile, meal and exercise.
func (s *Store) ExportSnapshot() (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := model.Snapshot{ExportDate: s.clock.Now()}
	var p model.Profile
	ok, err := s.readJSON(KeyProfile, &p)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export profile: %w", err)
	}
	if ok {
		snap.Profile = &p
	}
	meals, err := loadBuckets[model.MealRecord](s, KeyMeals)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export meals: %w", err)
	}
	exercises, err := loadBuckets[model.ExerciseRecord](s, KeyExercises)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("export exercises: %w", err)
	}
	snap.Meals = meals
	snap.Exercises = exercises
	return snap, nil
}

// ImportSnapshot validates the whole document first and then replaces each
// section it carries in a single provider write. A section that is absent or
// null is left as stored.
func (s *Store) ImportSnapshot(raw []byte) error {
	values, snap, err := s.stageSnapshot(raw)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: snapshot has no profile, meals or exercises", ErrImport)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(values); err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}
	s.log.Info("snapshot imported", "profile", snap.Profile != nil, "meal_days", len(snap.Meals), "exercise_days", len(snap.Exercises))
	return nil
}

// ReplaceFromSnapshot restores a snapshot as the complete state: sections it
// does not carry are emptied and settings are cleared, all in one write.
func (s *Store) ReplaceFromSnapshot(raw []byte) error {
	values, snap, err := s.stageSnapshot(raw)
	if err != nil {
		return err
	}
	if _, ok := values[KeyMeals]; !ok {
		values[KeyMeals] = model.MealBuckets{}
	}
	if _, ok := values[KeyExercises]; !ok {
		values[KeyExercises] = model.ExerciseBuckets{}
	}
	deletes := []string{KeySettings}
	if snap.Profile == nil {
		deletes = append(deletes, KeyProfile)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.replaceJSON(values, deletes...); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	s.log.Info("snapshot restored", "profile", snap.Profile != nil, "meal_days", len(snap.Meals), "exercise_days", len(snap.Exercises))
	return nil
}

func (s *Store) stageSnapshot(raw []byte) (map[string]any, model.Snapshot, error) {
	var snap model.Snapshot
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, snap, fmt.Errorf("%w: empty document", ErrImport)
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, snap, fmt.Errorf("%w: parse: %v", ErrImport, err)
	}

	values := map[string]any{}
	if snap.Profile != nil {
		p := normalizeProfile(*snap.Profile)
		if err := checkStruct("profile", p); err != nil {
			return nil, snap, fmt.Errorf("%w: %w", ErrImport, err)
		}
		p.SavedAt = s.clock.Now()
		snap.Profile = &p
		values[KeyProfile] = p
	}
	if snap.Meals != nil {
		if err := checkBuckets[model.MealRecord]("meal", snap.Meals); err != nil {
			return nil, snap, err
		}
		values[KeyMeals] = snap.Meals
	}
	if snap.Exercises != nil {
		if err := checkBuckets[model.ExerciseRecord]("exercise", snap.Exercises); err != nil {
			return nil, snap, err
		}
		values[KeyExercises] = snap.Exercises
	}
	return values, snap, nil
}

func checkBuckets[T record](what string, buckets map[string][]T) error {
	for day, items := range buckets {
		if !validDayKey(day) {
			return fmt.Errorf("%w: invalid %s day key %q", ErrImport, what, day)
		}
		seen := make(map[int64]struct{}, len(items))
		for i, item := range items {
			if err := checkStruct(what, item); err != nil {
				return fmt.Errorf("%w: %s[%d]: %w", ErrImport, day, i, err)
			}
			if _, dup := seen[item.RecordID()]; dup {
				return fmt.Errorf("%w: duplicate %s id %d on %s", ErrImport, what, item.RecordID(), day)
			}
			seen[item.RecordID()] = struct{}{}
		}
	}
	return nil
}
