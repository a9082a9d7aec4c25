package models

import "time"

// Result is one participant's outcome inside a match. IsWinner is the stored
// flag exactly as entered; Role is whatever the game offered at entry time and
// is never re-checked afterwards, so it can drift if the game's role list
// changes later.
type Result struct {
	PlayerID string  `json:"playerId"`
	Score    float64 `json:"score"`
	IsWinner bool    `json:"isWinner"`
	Role     string  `json:"role,omitempty"`
}

/*
 * 'Match' is one recorded play session. GameID references a Game by id, not by
 * embedding: the referenced game may have been deleted since, which makes the
 * match an orphaned record (still stored, still deletable).
 */
type Match struct {
	ID        string     `json:"id"`
	GameID    string     `json:"gameId"`
	Date      string     `json:"date"` // YYYY-MM-DD, never in the future
	Duration  *int       `json:"duration,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Rating    *int       `json:"rating,omitempty"` // 1..10, absent is not zero
	Results   []Result   `json:"results"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// EffectiveWinners returns the player ids to show as winners. Explicitly
// flagged participants take precedence; when nobody is flagged, the highest
// score wins and ties produce several winners at once. This is a derived view
// for display only; the stored IsWinner flags are never rewritten from here.
func (m *Match) EffectiveWinners() []string {
	var flagged []string
	for _, r := range m.Results {
		if r.IsWinner {
			flagged = append(flagged, r.PlayerID)
		}
	}
	if len(flagged) > 0 {
		return flagged
	}

	if len(m.Results) == 0 {
		return nil
	}
	best := m.Results[0].Score
	for _, r := range m.Results[1:] {
		if r.Score > best {
			best = r.Score
		}
	}
	var winners []string
	for _, r := range m.Results {
		if r.Score == best {
			winners = append(winners, r.PlayerID)
		}
	}
	return winners
}

// HasParticipant reports whether playerID appears in the match results.
func (m *Match) HasParticipant(playerID string) bool {
	for _, r := range m.Results {
		if r.PlayerID == playerID {
			return true
		}
	}
	return false
}

// ResultOf returns the participant's result, or nil if they did not play.
func (m *Match) ResultOf(playerID string) *Result {
	for i := range m.Results {
		if m.Results[i].PlayerID == playerID {
			return &m.Results[i]
		}
	}
	return nil
}
