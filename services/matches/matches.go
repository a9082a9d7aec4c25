package matches

import (
	"errors"
	"log"
	"sort"
	"time"

	"Meeple/models"
	"Meeple/services/games"
	"Meeple/services/store"
	"Meeple/utils"
)

// Service records and edits matches. It composes the games repository for
// validating the game reference and for offering the game's role list at
// entry time.
type Service struct {
	store store.Store
	games *games.Service
}

func New(s store.Store, g *games.Service) *Service {
	return &Service{store: s, games: g}
}

// Input carries the match form fields. Results arrive already collected, one
// per selected participant.
type Input struct {
	GameID   string
	Date     string
	Duration *int
	Notes    string
	Rating   *int
	Results  []models.Result
}

func (s *Service) load() ([]models.Match, error) {
	var matches []models.Match
	if _, err := store.LoadJSON(s.store, store.KeyMatches, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *Service) List() ([]models.Match, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*models.Match, error) {
	matches, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].ID == id {
			return &matches[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// RolesFor returns the selectable roles when recording a match of the given
// game: exactly the game's declared list at this moment, not a global one.
func (s *Service) RolesFor(gameID string) ([]string, error) {
	game, err := s.games.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	return game.Roles, nil
}

// Create validates and records a new match.
func (s *Service) Create(in Input) (*models.Match, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	matches, err := s.load()
	if err != nil {
		return nil, err
	}

	match := models.Match{
		ID:        utils.NewID("match"),
		GameID:    in.GameID,
		Date:      in.Date,
		Duration:  in.Duration,
		Notes:     in.Notes,
		Rating:    in.Rating,
		Results:   in.Results,
		CreatedAt: time.Now(),
	}
	matches = append(matches, match)
	if err := store.SaveJSON(s.store, store.KeyMatches, matches); err != nil {
		return nil, err
	}
	log.Printf("Match recorded: %s (game %s, %d players)", match.ID, match.GameID, len(match.Results))
	return &match, nil
}

// Update validates and overwrites the form fields of an existing match.
func (s *Service) Update(id string, in Input) (*models.Match, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	matches, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].ID == id {
			now := time.Now()
			matches[i].GameID = in.GameID
			matches[i].Date = in.Date
			matches[i].Duration = in.Duration
			matches[i].Notes = in.Notes
			matches[i].Rating = in.Rating
			matches[i].Results = in.Results
			matches[i].UpdatedAt = &now
			if err := store.SaveJSON(s.store, store.KeyMatches, matches); err != nil {
				return nil, err
			}
			updated := matches[i]
			return &updated, nil
		}
	}
	return nil, models.ErrNotFound
}

// Delete removes a match. This is the only operation allowed on an orphaned
// match (one whose game was deleted).
func (s *Service) Delete(id string) error {
	matches, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]models.Match, 0, len(matches))
	removed := false
	for _, m := range matches {
		if m.ID == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return models.ErrNotFound
	}
	return store.SaveJSON(s.store, store.KeyMatches, kept)
}

// ByGame returns all matches of one game, in storage order.
func (s *Service) ByGame(gameID string) ([]models.Match, error) {
	matches, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []models.Match
	for _, m := range matches {
		if m.GameID == gameID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ByPlayer returns all matches the player participated in.
func (s *Service) ByPlayer(playerID string) ([]models.Match, error) {
	matches, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []models.Match
	for _, m := range matches {
		if m.HasParticipant(playerID) {
			out = append(out, m)
		}
	}
	return out, nil
}

// SortByDate orders matches by date, newest first when desc. Stable, so
// same-day matches keep their storage order.
func SortByDate(matches []models.Match, desc bool) {
	sort.SliceStable(matches, func(i, j int) bool {
		if desc {
			return matches[i].Date > matches[j].Date
		}
		return matches[i].Date < matches[j].Date
	})
}

func (s *Service) validate(in Input) error {
	errs := models.ValidationErrors{}

	if in.GameID == "" {
		errs["game"] = "select a game"
	} else if _, err := s.games.GetByID(in.GameID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			errs["game"] = "game does not exist"
		} else {
			return err
		}
	}

	if len(in.Results) == 0 {
		errs["players"] = "select at least one participant"
	}
	seen := make(map[string]bool, len(in.Results))
	for _, r := range in.Results {
		if r.PlayerID == "" {
			errs["players"] = "participant is missing a player reference"
			break
		}
		if seen[r.PlayerID] {
			errs["players"] = "a player cannot participate twice"
			break
		}
		seen[r.PlayerID] = true
	}

	if in.Date == "" {
		errs["date"] = "match date is required"
	} else if _, err := utils.ParseISODate(in.Date); err != nil {
		errs["date"] = "invalid date"
	} else if utils.IsFutureDate(in.Date, time.Now()) {
		errs["date"] = "match date cannot be in the future"
	}

	if in.Duration != nil && *in.Duration <= 0 {
		errs["duration"] = "duration must be greater than 0"
	}

	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 10) {
		errs["rating"] = "rating must be between 1 and 10"
	}

	// Roles are offered from the game's list at entry time but deliberately
	// not re-checked here: the game's roles may change later and stored
	// matches keep whatever was valid when they were recorded.

	if len(errs) > 0 {
		return errs
	}
	return nil
}
