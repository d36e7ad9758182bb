package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitday/internal/model"
)

// SaveProfile validates p, stamps SavedAt and overwrites the stored profile.
func (s *Store) SaveProfile(p model.Profile) (model.Profile, error) {
	p = normalizeProfile(p)
	if err := checkStruct("profile", p); err != nil {
		return model.Profile{}, err
	}
	p.SavedAt = s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(map[string]any{KeyProfile: p}); err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("profile saved", "name", p.Name)
	return p, nil
}

func normalizeProfile(p model.Profile) model.Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.Gender = model.Gender(strings.ToLower(strings.TrimSpace(string(p.Gender))))
	return p
}

// GetProfile reports false when no profile is stored or it cannot be read.
func (s *Store) GetProfile() (model.Profile, bool) {
	var p model.Profile
	ok, err := s.readJSON(KeyProfile, &p)
	if err != nil {
		s.log.Warn("read profile failed", "error", err)
		return model.Profile{}, false
	}
	return p, ok
}

func (s *Store) DeleteProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(KeyProfile); err != nil {
		return fmt.Errorf("%w: delete profile: %w", ErrPersistence, err)
	}
	s.log.Info("profile deleted")
	return nil
}
