package models

import "time"

/*
 * 'Game' is one owned board game in the collection. Category is a plain label:
 * removing a category from the registry leaves games carrying the old string
 * (a dangling label, not an error).
 */
type Game struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	PhotoRef      string     `json:"photoRef,omitempty"`
	PurchaseDate  string     `json:"purchaseDate,omitempty"` // YYYY-MM-DD
	Price         *float64   `json:"price,omitempty"`
	MinPlayers    *int       `json:"minPlayers,omitempty"`
	MaxPlayers    *int       `json:"maxPlayers,omitempty"`
	AvgDuration   *int       `json:"avgDuration,omitempty"` // minutes
	Difficulty    string     `json:"difficulty,omitempty"`
	Roles         []string   `json:"roles,omitempty"`
	RulesReminder string     `json:"rulesReminder,omitempty"`
	Strategies    string     `json:"strategies,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// HasRole reports whether name is one of the game's declared roles.
func (g *Game) HasRole(name string) bool {
	for _, r := range g.Roles {
		if r == name {
			return true
		}
	}
	return false
}
