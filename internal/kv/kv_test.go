package kv_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/fitday/internal/db"
	"github.com/saadjs/fitday/internal/kv"
)

func newSQLiteProvider(t *testing.T) *kv.SQLite {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "fitday.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return kv.NewSQLite(sqldb)
}

func TestProvidersRoundTrip(t *testing.T) {
	t.Parallel()

	providers := map[string]kv.Provider{
		"memory": kv.NewMemory(0),
		"sqlite": newSQLiteProvider(t),
	}
	for name, p := range providers {
		if _, ok, err := p.Get("profile"); err != nil || ok {
			t.Fatalf("%s: expected missing key, got ok=%v err=%v", name, ok, err)
		}
		if err := p.Set("profile", `{"name":"Ada"}`); err != nil {
			t.Fatalf("%s: set: %v", name, err)
		}
		if err := p.Set("profile", `{"name":"Ada L"}`); err != nil {
			t.Fatalf("%s: overwrite: %v", name, err)
		}
		v, ok, err := p.Get("profile")
		if err != nil || !ok || v != `{"name":"Ada L"}` {
			t.Fatalf("%s: unexpected get: %q ok=%v err=%v", name, v, ok, err)
		}

		if err := p.SetMany(map[string]string{"meals": "{}", "exercises": "{}"}); err != nil {
			t.Fatalf("%s: set many: %v", name, err)
		}
		if err := p.Delete("profile", "meals", "exercises", "settings"); err != nil {
			t.Fatalf("%s: delete: %v", name, err)
		}
		for _, k := range []string{"profile", "meals", "exercises"} {
			if _, ok, _ := p.Get(k); ok {
				t.Fatalf("%s: expected %s to be deleted", name, k)
			}
		}
	}
}

func TestProvidersReplace(t *testing.T) {
	t.Parallel()

	providers := map[string]kv.Provider{
		"memory": kv.NewMemory(0),
		"sqlite": newSQLiteProvider(t),
	}
	for name, p := range providers {
		if err := p.SetMany(map[string]string{"profile": "{}", "settings": "{}", "meals": "{}"}); err != nil {
			t.Fatalf("%s: seed: %v", name, err)
		}
		if err := p.Replace(map[string]string{"meals": `{"2026-02-19":[]}`, "exercises": "{}"}, "profile", "settings"); err != nil {
			t.Fatalf("%s: replace: %v", name, err)
		}
		for _, k := range []string{"profile", "settings"} {
			if _, ok, _ := p.Get(k); ok {
				t.Fatalf("%s: expected %s to be deleted", name, k)
			}
		}
		if v, ok, _ := p.Get("meals"); !ok || v != `{"2026-02-19":[]}` {
			t.Fatalf("%s: unexpected meals %q ok=%v", name, v, ok)
		}
		if _, ok, _ := p.Get("exercises"); !ok {
			t.Fatalf("%s: expected exercises written", name)
		}
	}
}

func TestMemoryReplaceQuotaCountsDeletes(t *testing.T) {
	t.Parallel()

	m := kv.NewMemory(20)
	if err := m.Set("profile", "0123456789"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := m.Replace(map[string]string{"meals": "0123456789"}, "profile"); err != nil {
		t.Fatalf("replace within quota after delete: %v", err)
	}

	m.FailWrites = true
	if err := m.Replace(nil, "meals"); !errors.Is(err, kv.ErrQuotaExceeded) {
		t.Fatalf("expected forced failure, got %v", err)
	}
	if _, ok, _ := m.Get("meals"); !ok {
		t.Fatalf("failed replace must not delete")
	}
}

func TestMemoryQuota(t *testing.T) {
	t.Parallel()

	m := kv.NewMemory(20)
	if err := m.Set("meals", "0123456789"); err != nil {
		t.Fatalf("set within quota: %v", err)
	}
	err := m.Set("exercises", "0123456789")
	if !errors.Is(err, kv.ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if _, ok, _ := m.Get("exercises"); ok {
		t.Fatalf("rejected write must not be stored")
	}
	// Replacing an existing key only counts the new value.
	if err := m.Set("meals", "01234567890123"); err != nil {
		t.Fatalf("replace within quota: %v", err)
	}
}

func TestMemoryFailWritesIsAllOrNothing(t *testing.T) {
	t.Parallel()

	m := kv.NewMemory(0)
	m.FailWrites = true
	if err := m.SetMany(map[string]string{"a": "1", "b": "2"}); !errors.Is(err, kv.ErrQuotaExceeded) {
		t.Fatalf("expected forced failure, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected no keys after failed write, got %d", m.Len())
	}
}

func TestNewRedisValidation(t *testing.T) {
	t.Parallel()

	if _, err := kv.NewRedis("", "fitday:", time.Second); err == nil {
		t.Fatalf("expected missing address error")
	}
	if _, err := kv.NewRedis("127.0.0.1:1", "fitday:", 200*time.Millisecond); err == nil {
		t.Fatalf("expected ping failure against closed port")
	}
}
