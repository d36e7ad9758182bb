package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/saadjs/fitday/internal/db"
	"github.com/saadjs/fitday/internal/kv"
	"github.com/saadjs/fitday/internal/logger"
	"github.com/saadjs/fitday/internal/model"
	"github.com/saadjs/fitday/internal/service"
)

var testNow = time.Date(2026, 2, 20, 9, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) (*service.Store, *kv.Memory, *clockwork.FakeClock) {
	t.Helper()
	mem := kv.NewMemory(0)
	clock := clockwork.NewFakeClockAt(testNow)
	return service.NewStore(mem, clock, logger.Nop()), mem, clock
}

func newSQLiteStore(t *testing.T) *service.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitday.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return service.NewStore(kv.NewSQLite(sqldb), clockwork.NewFakeClockAt(testNow), logger.Nop())
}

func validProfile() model.Profile {
	return model.Profile{Name: "Ayse", Age: 30, Height: 175, Weight: 70, Gender: model.GenderMale}
}
