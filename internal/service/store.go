package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/saadjs/fitday/internal/kv"
	"github.com/saadjs/fitday/internal/logger"
)

const (
	KeyProfile   = "profile"
	KeyMeals     = "meals"
	KeyExercises = "exercises"
	KeySettings  = "settings"

	DayLayout = "2006-01-02"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrPersistence    = errors.New("persistence failed")
	ErrBucketNotFound = errors.New("no records for day")
	ErrImport         = errors.New("invalid snapshot")
)

// Store owns the profile and the day-bucketed meal and exercise logs. A single
// mutex serializes every read-modify-write of a bucket mapping.
type Store struct {
	mu     sync.Mutex
	kv     kv.Provider
	clock  clockwork.Clock
	log    *logger.Logger
	lastID int64
}

func NewStore(provider kv.Provider, clock clockwork.Clock, log *logger.Logger) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		kv:     provider,
		clock:  clock,
		log:    log.With("component", "store"),
		lastID: clock.Now().UnixMilli(),
	}
}

// Today returns the current day key in the clock's location.
func (s *Store) Today() string {
	return s.clock.Now().Format(DayLayout)
}

// nextID is strictly increasing for the life of the store and also stays
// above floor, the largest id already present in the target bucket.
func (s *Store) nextID(floor int64) int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	if id <= floor {
		id = floor + 1
	}
	s.lastID = id
	return id
}

// readJSON decodes key into out. A missing key leaves out untouched and
// reports false.
func (s *Store) readJSON(key string, out any) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %v", ErrPersistence, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrPersistence, key, err)
	}
	return true, nil
}

func (s *Store) writeJSON(values map[string]any) error {
	return s.replaceJSON(values)
}

// replaceJSON encodes values and writes them together with deletes as one
// provider operation.
func (s *Store) replaceJSON(values map[string]any, deletes ...string) error {
	encoded := make(map[string]string, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %v", ErrPersistence, k, err)
		}
		encoded[k] = string(b)
	}
	if err := s.kv.Replace(encoded, deletes...); err != nil {
		s.log.Warn("storage write failed", "keys", len(encoded), "deletes", len(deletes), "error", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// ClearAllData removes the profile, every meal and exercise bucket, and settings.
func (s *Store) ClearAllData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(KeyProfile, KeyMeals, KeyExercises, KeySettings); err != nil {
		s.log.Warn("clear all data failed", "error", err)
		return fmt.Errorf("%w: clear all data: %w", ErrPersistence, err)
	}
	s.log.Info("all data cleared")
	return nil
}
