package randomizer

import (
	"errors"
	"math/rand"
	"sort"

	"Meeple/models"
	"Meeple/services/games"
)

// ErrNoGamesMatch distinguishes "the filters excluded everything" from a
// normal selection.
var ErrNoGamesMatch = errors.New("no games match the filters")

// Bounds assumed when a game leaves its player range open.
const (
	defaultMinPlayers = 1
	defaultMaxPlayers = 99
)

// Filters narrows the catalog before the random draw. A nil field disables
// that filter; enabled filters combine conjunctively, order-independent.
type Filters struct {
	PlayerCount *int    // exact participant count the game must allow
	MaxDuration *int    // keep games with a set avg duration <= this
	Category    *string // exact category match
}

// Filter applies f to the catalog and returns the narrowed slice.
func Filter(catalog []models.Game, f Filters) []models.Game {
	filtered := make([]models.Game, 0, len(catalog))
	for _, g := range catalog {
		if f.PlayerCount != nil {
			min, max := defaultMinPlayers, defaultMaxPlayers
			if g.MinPlayers != nil {
				min = *g.MinPlayers
			}
			if g.MaxPlayers != nil {
				max = *g.MaxPlayers
			}
			if *f.PlayerCount < min || *f.PlayerCount > max {
				continue
			}
		}
		if f.MaxDuration != nil {
			if g.AvgDuration == nil || *g.AvgDuration > *f.MaxDuration {
				continue
			}
		}
		if f.Category != nil && g.Category != *f.Category {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

// Categories returns the distinct categories present in the catalog, sorted,
// for populating the category filter.
func Categories(catalog []models.Game) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range catalog {
		if g.Category != "" && !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Randomizer is one caller-owned picking session. It keeps the last pick as a
// one-shot hand-off slot for pre-filling a new match's game field.
type Randomizer struct {
	games     *games.Service
	selection *models.Game
}

func New(g *games.Service) *Randomizer {
	return &Randomizer{games: g}
}

// Pick filters the catalog and draws uniformly at random from what is left.
// The pick replaces any previous one in the hand-off slot (last write wins).
func (r *Randomizer) Pick(f Filters) (*models.Game, error) {
	catalog, err := r.games.List()
	if err != nil {
		return nil, err
	}
	filtered := Filter(catalog, f)
	if len(filtered) == 0 {
		return nil, ErrNoGamesMatch
	}
	picked := filtered[rand.Intn(len(filtered))]
	r.selection = &picked
	return &picked, nil
}

// TakeSelection consumes the current selection. The second call in a row
// returns nil: the hand-off is a one-shot side channel.
func (r *Randomizer) TakeSelection() *models.Game {
	sel := r.selection
	r.selection = nil
	return sel
}
