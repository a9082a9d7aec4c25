package games

import (
	"log"
	"time"

	"Meeple/models"
	"Meeple/services/categories"
	"Meeple/services/store"
	"Meeple/utils"
)

// Service is the games repository. It holds no state of its own: every call
// re-reads the full collection from the store and every mutation writes the
// whole collection back.
type Service struct {
	store    store.Store
	registry *categories.Registry
}

func New(s store.Store, r *categories.Registry) *Service {
	return &Service{store: s, registry: r}
}

// Input carries the game form fields for create and update.
type Input struct {
	Name          string
	Category      string
	PhotoRef      string
	PurchaseDate  string
	Price         *float64
	MinPlayers    *int
	MaxPlayers    *int
	AvgDuration   *int
	Difficulty    string
	Roles         []string
	RulesReminder string
	Strategies    string
	Notes         string
}

func (s *Service) load() ([]models.Game, error) {
	var games []models.Game
	if _, err := store.LoadJSON(s.store, store.KeyGames, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// List returns all games in storage order.
func (s *Service) List() ([]models.Game, error) {
	return s.load()
}

// GetByID returns the game or models.ErrNotFound.
func (s *Service) GetByID(id string) (*models.Game, error) {
	games, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range games {
		if games[i].ID == id {
			return &games[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// Create validates the input, assigns a fresh id and creation timestamp,
// appends and persists. On a failed write nothing is considered saved.
func (s *Service) Create(in Input) (*models.Game, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	games, err := s.load()
	if err != nil {
		return nil, err
	}

	game := models.Game{
		ID:            utils.NewID("game"),
		Name:          in.Name,
		Category:      in.Category,
		PhotoRef:      in.PhotoRef,
		PurchaseDate:  in.PurchaseDate,
		Price:         in.Price,
		MinPlayers:    in.MinPlayers,
		MaxPlayers:    in.MaxPlayers,
		AvgDuration:   in.AvgDuration,
		Difficulty:    in.Difficulty,
		Roles:         in.Roles,
		RulesReminder: in.RulesReminder,
		Strategies:    in.Strategies,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}

	games = append(games, game)
	if err := store.SaveJSON(s.store, store.KeyGames, games); err != nil {
		return nil, err
	}
	log.Printf("Game added: %s (%s)", game.Name, game.ID)
	return &game, nil
}

// Update merges the form fields over the stored record and stamps updatedAt.
func (s *Service) Update(id string, in Input) (*models.Game, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	games, err := s.load()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range games {
		if games[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, models.ErrNotFound
	}

	now := time.Now()
	g := &games[idx]
	g.Name = in.Name
	g.Category = in.Category
	g.PhotoRef = in.PhotoRef
	g.PurchaseDate = in.PurchaseDate
	g.Price = in.Price
	g.MinPlayers = in.MinPlayers
	g.MaxPlayers = in.MaxPlayers
	g.AvgDuration = in.AvgDuration
	g.Difficulty = in.Difficulty
	g.Roles = in.Roles
	g.RulesReminder = in.RulesReminder
	g.Strategies = in.Strategies
	g.Notes = in.Notes
	g.UpdatedAt = &now

	if err := store.SaveJSON(s.store, store.KeyGames, games); err != nil {
		return nil, err
	}
	updated := games[idx]
	return &updated, nil
}

// Delete removes the game. Matches referencing it are deliberately left in
// place and become orphaned records.
func (s *Service) Delete(id string) error {
	games, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]models.Game, 0, len(games))
	removed := false
	for _, g := range games {
		if g.ID == id {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	if !removed {
		return models.ErrNotFound
	}
	return store.SaveJSON(s.store, store.KeyGames, kept)
}

func (s *Service) validate(in Input) error {
	errs := models.ValidationErrors{}

	if in.Name == "" {
		errs["name"] = "game name is required"
	}

	if in.Category == "" {
		errs["category"] = "category is required"
	} else {
		known, err := s.registry.Contains(in.Category)
		if err != nil {
			return err
		}
		if !known {
			errs["category"] = "unknown category"
		}
	}

	if in.Price != nil && *in.Price < 0 {
		errs["price"] = "price cannot be negative"
	}

	if in.PurchaseDate != "" {
		if _, err := utils.ParseISODate(in.PurchaseDate); err != nil {
			errs["purchaseDate"] = "invalid date"
		} else if utils.IsFutureDate(in.PurchaseDate, time.Now()) {
			errs["purchaseDate"] = "purchase date cannot be in the future"
		}
	}

	if in.MinPlayers != nil && in.MaxPlayers != nil && *in.MaxPlayers < *in.MinPlayers {
		errs["players"] = "max players must be greater than or equal to min"
	}

	if in.AvgDuration != nil && *in.AvgDuration <= 0 {
		errs["avgDuration"] = "average duration must be positive"
	}

	seen := make(map[string]bool, len(in.Roles))
	for _, role := range in.Roles {
		if role == "" {
			errs["roles"] = "roles cannot be empty"
			break
		}
		if seen[role] {
			errs["roles"] = "roles must be unique"
			break
		}
		seen[role] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
