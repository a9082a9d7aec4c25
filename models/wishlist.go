package models

import "time"

// Priority of a wishlist entry.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// WishlistEntry is a not-yet-owned game. Promoting an entry creates a Game in
// the collection and removes the entry; the two steps are independent writes.
type WishlistEntry struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	PhotoRef  string     `json:"photoRef,omitempty"`
	Price     float64    `json:"price"`
	Priority  Priority   `json:"priority"`
	Link      string     `json:"link,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
