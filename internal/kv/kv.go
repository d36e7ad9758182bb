// Package kv holds the key-value persistence providers behind the record store.
package kv

import "errors"

// ErrQuotaExceeded is returned when a write would exceed the provider's capacity.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Provider is a flat string-to-string store. SetMany, Delete and Replace apply
// all keys or none.
type Provider interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetMany(values map[string]string) error
	Delete(keys ...string) error
	// Replace writes values and removes deletes in one atomic step.
	Replace(values map[string]string, deletes ...string) error
}
