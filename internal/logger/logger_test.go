package logger

import "testing"

func TestNewModesAndLevels(t *testing.T) {
	t.Parallel()
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode, "debug")
		if err != nil {
			t.Fatalf("new %q: %v", mode, err)
		}
		l.With("component", "test").Debug("hello", "k", 1)
	}
	if _, err := New("dev", "loud"); err == nil {
		t.Fatalf("expected invalid level to fail")
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	l := Nop()
	l.Info("discarded")
	l.Sync()
}
