package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/fitday/internal/model"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	ProfilePresent    bool `json:"profile_present"`
	InvalidProfile    bool `json:"invalid_profile"`
	MealDays          int  `json:"meal_days"`
	ExerciseDays      int  `json:"exercise_days"`
	MalformedDayKeys  int  `json:"malformed_day_keys"`
	DuplicateIDs      int  `json:"duplicate_ids"`
	InvalidRecords    int  `json:"invalid_records"`
	UnreadableEntries int  `json:"unreadable_entries"`
}

// Healthy reports whether the doctor found nothing to flag.
func (r DoctorReport) Healthy() bool {
	return !r.InvalidProfile && r.MalformedDayKeys == 0 && r.DuplicateIDs == 0 && r.InvalidRecords == 0 && r.UnreadableEntries == 0
}

// RunDoctor inspects the stored documents without changing them.
func (s *Store) RunDoctor() (DoctorReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := DoctorReport{}
	var p model.Profile
	ok, err := s.readJSON(KeyProfile, &p)
	switch {
	case err != nil:
		report.UnreadableEntries++
	case ok:
		report.ProfilePresent = true
		report.InvalidProfile = checkStruct("profile", p) != nil
	}

	meals, err := loadBuckets[model.MealRecord](s, KeyMeals)
	if err != nil {
		report.UnreadableEntries++
	} else {
		report.MealDays = len(meals)
		inspectBuckets("meal", meals, &report)
	}
	exercises, err := loadBuckets[model.ExerciseRecord](s, KeyExercises)
	if err != nil {
		report.UnreadableEntries++
	} else {
		report.ExerciseDays = len(exercises)
		inspectBuckets("exercise", exercises, &report)
	}
	var st model.Settings
	if _, err := s.readJSON(KeySettings, &st); err != nil {
		report.UnreadableEntries++
	}
	if !report.Healthy() {
		s.log.Warn("doctor found problems", "report", report)
	}
	return report, nil
}

func inspectBuckets[T record](what string, buckets map[string][]T, report *DoctorReport) {
	for day, items := range buckets {
		if !validDayKey(day) {
			report.MalformedDayKeys++
		}
		seen := make(map[int64]struct{}, len(items))
		for _, item := range items {
			if checkStruct(what, item) != nil {
				report.InvalidRecords++
			}
			if _, dup := seen[item.RecordID()]; dup {
				report.DuplicateIDs++
			}
			seen[item.RecordID()] = struct{}{}
		}
	}
}

// CreateBackup writes the current snapshot to dir with a sha256 sidecar file.
func (s *Store) CreateBackup(dir string) (BackupInfo, error) {
	if strings.TrimSpace(dir) == "" {
		return BackupInfo{}, fmt.Errorf("backup directory is required")
	}
	snap, err := s.ExportSnapshot()
	if err != nil {
		return BackupInfo{}, err
	}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return BackupInfo{}, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	outPath := filepath.Join(dir, "fitday-"+snap.ExportDate.Format("20060102-150405.000")+".json")
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write backup: %w", err)
	}
	checksum := bytesSHA256(body)
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	s.log.Info("backup created", "path", outPath)
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: snap.ExportDate, SizeBytes: int64(len(body))}, nil
}

// RestoreBackup verifies the sidecar checksum when present and replaces the
// stored state with the backup.
func (s *Store) RestoreBackup(backupPath string) error {
	if strings.TrimSpace(backupPath) == "" {
		return fmt.Errorf("backup path is required")
	}
	body, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		if strings.TrimSpace(string(expected)) != bytesSHA256(body) {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := s.ReplaceFromSnapshot(body); err != nil {
		return err
	}
	s.log.Info("backup restored", "path", backupPath)
	return nil
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasPrefix(f.Name(), "fitday-") || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path > out[j].Path
	})
	return out, nil
}

func bytesSHA256(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
