package service_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/fitday/internal/model"
	"github.com/saadjs/fitday/internal/service"
)

func seedStore(t *testing.T, store *service.Store) {
	t.Helper()
	if _, err := store.SaveProfile(validProfile()); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if _, err := store.AddMealRecord(service.MealDraft{Name: "Elma", Calories: 95, Category: model.CategorySnack}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := store.AddExerciseRecord(service.ExerciseDraft{Name: "Run", Duration: 30, Type: model.MeasureDuration, CaloriesBurned: 245}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src, _, _ := newTestStore(t)
	seedStore(t, src)

	snap, err := src.ExportSnapshot()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if snap.Profile == nil || len(snap.Meals["2026-02-20"]) != 1 || len(snap.Exercises["2026-02-20"]) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if !snap.ExportDate.Equal(testNow) {
		t.Fatalf("expected export date %v, got %v", testNow, snap.ExportDate)
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	dst, _, _ := newTestStore(t)
	if err := dst.ImportSnapshot(raw); err != nil {
		t.Fatalf("import: %v", err)
	}
	p, ok := dst.GetProfile()
	if !ok || p.Name != "Ayse" {
		t.Fatalf("unexpected imported profile: %+v", p)
	}
	if dst.TodayTotalCaloriesConsumed() != 95 || dst.TodayTotalCaloriesBurned() != 245 {
		t.Fatalf("unexpected imported totals: %d / %d", dst.TodayTotalCaloriesConsumed(), dst.TodayTotalCaloriesBurned())
	}
}

func TestImportIsAllOrNothing(t *testing.T) {
	t.Parallel()
	store, _, _ := newTestStore(t)
	seedStore(t, store)
	before, err := store.ExportSnapshot()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	docs := map[string]string{
		"garbage":     `not json`,
		"empty":       ``,
		"no sections": `{"exportDate":"2026-02-20T09:00:00Z"}`,
		"bad profile": `{"profile":{"name":"Bo","age":200,"height":170,"weight":70,"gender":"male"},"meals":{}}`,
		"bad day key": `{"profile":{"name":"Bora","age":30,"height":170,"weight":70,"gender":"male"},"meals":{"20/02/2026":[]}}`,
		"bad meal":    `{"meals":{"2026-02-19":[{"id":1,"name":"Cake","calories":0,"category":"snack"}]}}`,
		"bad type":    `{"exercises":{"2026-02-19":[{"id":1,"name":"Row","duration":10,"type":"distance","caloriesBurned":50}]}}`,
		"duplicate id": `{"meals":{"2026-02-19":[` +
			`{"id":7,"name":"Tea","calories":5,"category":"snack"},` +
			`{"id":7,"name":"Tea","calories":5,"category":"snack"}]}}`,
	}
	for name, doc := range docs {
		if err := store.ImportSnapshot([]byte(doc)); !errors.Is(err, service.ErrImport) {
			t.Fatalf("%s: expected import error, got %v", name, err)
		}
	}

	after, err := store.ExportSnapshot()
	if err != nil {
		t.Fatalf("export after: %v", err)
	}
	if after.Profile.Name != before.Profile.Name || len(after.Meals) != len(before.Meals) || len(after.Exercises) != len(before.Exercises) {
		t.Fatalf("state changed after rejected imports: before=%+v after=%+v", before, after)
	}
}

func TestImportLeavesAbsentSectionsAlone(t *testing.T) {
	t.Parallel()
	store, _, clock := newTestStore(t)
	seedStore(t, store)
	clock.Advance(time.Hour)

	doc := `{"profile":{"name":"Deniz","age":41,"height":168,"weight":64.5,"gender":"female","savedAt":"2020-01-01T00:00:00Z"},"meals":null}`
	if err := store.ImportSnapshot([]byte(doc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	p, ok := store.GetProfile()
	if !ok || p.Name != "Deniz" || p.Gender != model.GenderFemale {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if !p.SavedAt.Equal(clock.Now()) {
		t.Fatalf("expected savedAt restamped to %v, got %v", clock.Now(), p.SavedAt)
	}
	if len(store.TodayMealRecords()) != 1 || len(store.TodayExerciseRecords()) != 1 {
		t.Fatalf("expected meals and exercises untouched")
	}
}

func TestDoctorReport(t *testing.T) {
	t.Parallel()
	store, mem, _ := newTestStore(t)

	report, err := store.RunDoctor()
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !report.Healthy() || report.ProfilePresent {
		t.Fatalf("expected healthy empty report, got %+v", report)
	}

	if err := mem.SetMany(map[string]string{
		"profile":   `{"name":"X","age":30,"height":170,"weight":70,"gender":"male"}`,
		"meals":     `{"2026-02-20":[{"id":1,"name":"Tea","calories":5,"category":"snack"},{"id":1,"name":"Tea","calories":5,"category":"snack"}],"bad-day":[{"id":2,"name":"","calories":9000,"category":"snack"}]}`,
		"exercises": `{not json`,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	report, err = store.RunDoctor()
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if report.Healthy() {
		t.Fatalf("expected problems, got %+v", report)
	}
	if !report.ProfilePresent || !report.InvalidProfile {
		t.Fatalf("expected invalid profile flagged: %+v", report)
	}
	if report.MealDays != 2 || report.MalformedDayKeys != 1 || report.DuplicateIDs != 1 || report.InvalidRecords != 1 || report.UnreadableEntries != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestBackupCreateListRestore(t *testing.T) {
	t.Parallel()
	store, _, clock := newTestStore(t)
	seedStore(t, store)
	dir := filepath.Join(t.TempDir(), "backups")

	info, err := store.CreateBackup(dir)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes == 0 {
		t.Fatalf("unexpected backup info: %+v", info)
	}
	clock.Advance(time.Second)
	if _, err := store.CreateBackup(dir); err != nil {
		t.Fatalf("create second backup: %v", err)
	}
	list, err := service.ListBackups(dir)
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(list) != 2 || list[1].Path != info.Path {
		t.Fatalf("expected newest first with 2 backups, got %+v", list)
	}

	if err := store.ClearAllData(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.AddMealRecord(service.MealDraft{Name: "Extra", Calories: 10, Category: model.CategorySnack}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if err := store.RestoreBackup(info.Path); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, ok := store.GetProfile(); !ok {
		t.Fatalf("expected profile restored")
	}
	meals := store.TodayMealRecords()
	if len(meals) != 1 || meals[0].Name != "Elma" {
		t.Fatalf("expected restored meals to replace current ones, got %+v", meals)
	}

	if err := os.WriteFile(info.Path+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatalf("tamper checksum: %v", err)
	}
	if err := store.RestoreBackup(info.Path); err == nil {
		t.Fatalf("expected checksum mismatch")
	}
}

func TestReplaceFromSnapshotClearsMissingSections(t *testing.T) {
	t.Parallel()
	store, _, _ := newTestStore(t)
	seedStore(t, store)
	if err := store.SaveSettings(model.Settings{ActivityLevel: model.ActivityActive}); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	doc := `{"meals":{"2026-02-19":[{"id":3,"name":"Tea","calories":5,"category":"snack"}]}}`
	if err := store.ReplaceFromSnapshot([]byte(doc)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if _, ok := store.GetProfile(); ok {
		t.Fatalf("expected profile cleared")
	}
	if got := store.GetSettings(); got.ActivityLevel != "" {
		t.Fatalf("expected settings cleared, got %+v", got)
	}
	if len(store.TodayMealRecords()) != 0 || len(store.TodayExerciseRecords()) != 0 {
		t.Fatalf("expected today's records replaced")
	}
	if len(store.MealRecordsOn("2026-02-19")) != 1 {
		t.Fatalf("expected restored meal on 2026-02-19")
	}
}

func TestReplaceFromSnapshotFailureKeepsState(t *testing.T) {
	t.Parallel()
	store, mem, _ := newTestStore(t)
	seedStore(t, store)
	if err := store.SaveSettings(model.Settings{ActivityLevel: model.ActivityActive}); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	mem.FailWrites = true
	if err := store.ReplaceFromSnapshot([]byte(`{"meals":{}}`)); !errors.Is(err, service.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	mem.FailWrites = false

	if _, ok := store.GetProfile(); !ok {
		t.Fatalf("expected profile kept after failed restore")
	}
	if got := store.GetSettings(); got.ActivityLevel != model.ActivityActive {
		t.Fatalf("expected settings kept, got %+v", got)
	}
	if len(store.TodayMealRecords()) != 1 {
		t.Fatalf("expected meals kept after failed restore")
	}
}

func TestImportNormalizesProfile(t *testing.T) {
	t.Parallel()
	store, _, _ := newTestStore(t)

	doc := `{"profile":{"name":"  Deniz ","age":41,"height":168,"weight":64.5,"gender":" Female"}}`
	if err := store.ImportSnapshot([]byte(doc)); err != nil {
		t.Fatalf("import: %v", err)
	}
	p, ok := store.GetProfile()
	if !ok || p.Name != "Deniz" || p.Gender != model.GenderFemale {
		t.Fatalf("unexpected profile: %+v", p)
	}
}
