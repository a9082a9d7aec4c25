package utils

import (
	"fmt"
	"time"
)

var lastStamp int64

// NewID builds a type-prefixed identifier from the unix-millisecond clock,
// e.g. "game_1716212345678". Two calls landing in the same millisecond bump
// the stamp, so ids stay unique for the lifetime of the collection and are
// never reused after a deletion. Single-writer model, no locking needed.
func NewID(prefix string) string {
	stamp := time.Now().UnixMilli()
	if stamp <= lastStamp {
		stamp = lastStamp + 1
	}
	lastStamp = stamp
	return fmt.Sprintf("%s_%d", prefix, stamp)
}
