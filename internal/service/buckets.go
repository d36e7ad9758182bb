package service

import "fmt"

type record interface {
	RecordID() int64
}

// loadBuckets reads the full day mapping stored under key. A missing key is
// an empty mapping.
func loadBuckets[T record](s *Store, key string) (map[string][]T, error) {
	buckets := map[string][]T{}
	if _, err := s.readJSON(key, &buckets); err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = map[string][]T{}
	}
	return buckets, nil
}

// queryBucket returns a copy of one day's records. Read failures degrade to
// an empty list.
func queryBucket[T record](s *Store, key, day string) []T {
	buckets, err := loadBuckets[T](s, key)
	if err != nil {
		s.log.Warn("read bucket failed", "key", key, "day", day, "error", err)
		return []T{}
	}
	out := make([]T, len(buckets[day]))
	copy(out, buckets[day])
	return out
}

func maxID[T record](items []T) int64 {
	var highest int64
	for _, item := range items {
		if item.RecordID() > highest {
			highest = item.RecordID()
		}
	}
	return highest
}

// appendToday adds a record to today's bucket. build receives the assigned id.
func appendToday[T record](s *Store, key string, build func(id int64) T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := loadBuckets[T](s, key)
	if err != nil {
		return zero, err
	}
	day := s.Today()
	item := build(s.nextID(maxID(buckets[day])))
	buckets[day] = append(buckets[day], item)
	if err := s.writeJSON(map[string]any{key: buckets}); err != nil {
		return zero, err
	}
	s.log.Debug("record added", "key", key, "day", day, "id", item.RecordID())
	return item, nil
}

// removeFromDay filters id out of day's bucket. A day with no bucket is
// ErrBucketNotFound; an id that is not present is not an error.
func removeFromDay[T record](s *Store, key, day string, id int64) error {
	if err := checkDay(day); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets, err := loadBuckets[T](s, key)
	if err != nil {
		return err
	}
	items, ok := buckets[day]
	if !ok {
		return fmt.Errorf("%w: %s has no %s", ErrBucketNotFound, day, key)
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		s.log.Debug("record not found", "key", key, "day", day, "id", id)
		return nil
	}
	buckets[day] = kept
	if err := s.writeJSON(map[string]any{key: buckets}); err != nil {
		return err
	}
	s.log.Debug("record deleted", "key", key, "day", day, "id", id)
	return nil
}
