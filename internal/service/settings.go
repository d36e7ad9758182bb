package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitday/internal/model"
)

// GetSettings returns stored settings, or the zero value when none are stored
// or they cannot be read.
func (s *Store) GetSettings() model.Settings {
	var st model.Settings
	if _, err := s.readJSON(KeySettings, &st); err != nil {
		s.log.Warn("read settings failed", "error", err)
		return model.Settings{}
	}
	return st
}

func (s *Store) SaveSettings(st model.Settings) error {
	st.ActivityLevel = model.ActivityLevel(strings.ToLower(strings.TrimSpace(string(st.ActivityLevel))))
	if st.ActivityLevel != "" && !st.ActivityLevel.Valid() {
		return fmt.Errorf("%w: unknown activity level %q", ErrValidation, st.ActivityLevel)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeJSON(map[string]any{KeySettings: st}); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
