package models

import "time"

// Player is somebody who shows up in match results. Deleting a player never
// cascades: their results stay in stored matches and render as removed.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PhotoRef  string    `json:"photoRef,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
