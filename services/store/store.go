package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"Meeple/models"
)

// Storage keys. One key holds one whole collection as a single JSON document;
// every mutation is a full read-modify-write of that document under the
// single-writer assumption. The wishlist lives in its own namespace, separate
// from the four core keys.
const (
	KeyGames      = "games"
	KeyPlayers    = "players"
	KeyMatches    = "matches"
	KeyCategories = "categories"
	KeySettings   = "settings"
	KeyWishlist   = "wishlist:items"
)

// ErrNoKey signals that a key has never been written. Repositories treat it as
// an empty collection; the category registry treats it as "seed the defaults".
var ErrNoKey = errors.New("store: key not set")

// Store is the only I/O boundary of the tracker. Implementations persist raw
// JSON documents; all parsing into typed entities happens above this line.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// LoadJSON reads key into out. A key that was never written leaves out
// untouched and returns false. Malformed stored data is an explicit parse
// error, never silently dropped.
func LoadJSON(s Store, key string, out any) (bool, error) {
	data, err := s.Get(key)
	if errors.Is(err, ErrNoKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parsing stored %q: %v", key, err)
	}
	return true, nil
}

// SaveJSON marshals v and writes it under key. Write failures come back as a
// PersistenceError: the caller's in-memory state is not durable at that point.
func SaveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %q: %v", key, err)
	}
	if err := s.Set(key, data); err != nil {
		return &models.PersistenceError{Key: key, Err: err}
	}
	return nil
}

// SizeKB reports the total size of all stored keys and values in kilobytes.
func SizeKB(s Store) (float64, error) {
	keys, err := s.Keys()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, key := range keys {
		data, err := s.Get(key)
		if err != nil {
			if errors.Is(err, ErrNoKey) {
				continue
			}
			return 0, err
		}
		total += len(key) + len(data)
	}
	return float64(total) / 1024, nil
}
