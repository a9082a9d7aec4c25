package players

import (
	"log"
	"time"
	"unicode/utf8"

	"Meeple/models"
	"Meeple/services/store"
	"Meeple/utils"
)

// Service is the players repository.
type Service struct {
	store store.Store
}

func New(s store.Store) *Service {
	return &Service{store: s}
}

// Input carries the player form fields.
type Input struct {
	Name     string
	PhotoRef string
}

func (s *Service) load() ([]models.Player, error) {
	var players []models.Player
	if _, err := store.LoadJSON(s.store, store.KeyPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Service) List() ([]models.Player, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*models.Player, error) {
	players, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID == id {
			return &players[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Service) Create(in Input) (*models.Player, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	players, err := s.load()
	if err != nil {
		return nil, err
	}

	player := models.Player{
		ID:        utils.NewID("player"),
		Name:      in.Name,
		PhotoRef:  in.PhotoRef,
		CreatedAt: time.Now(),
	}
	players = append(players, player)
	if err := store.SaveJSON(s.store, store.KeyPlayers, players); err != nil {
		return nil, err
	}
	log.Printf("Player added: %s (%s)", player.Name, player.ID)
	return &player, nil
}

func (s *Service) Update(id string, in Input) (*models.Player, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	players, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range players {
		if players[i].ID == id {
			players[i].Name = in.Name
			players[i].PhotoRef = in.PhotoRef
			if err := store.SaveJSON(s.store, store.KeyPlayers, players); err != nil {
				return nil, err
			}
			updated := players[i]
			return &updated, nil
		}
	}
	return nil, models.ErrNotFound
}

// Delete removes the player. Their results stay embedded in stored matches
// and render as a removed player; the matches themselves remain valid.
func (s *Service) Delete(id string) error {
	players, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]models.Player, 0, len(players))
	removed := false
	for _, p := range players {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return models.ErrNotFound
	}
	return store.SaveJSON(s.store, store.KeyPlayers, kept)
}

func validate(in Input) error {
	errs := models.ValidationErrors{}
	if in.Name == "" {
		errs["name"] = "player name is required"
	} else if utf8.RuneCountInString(in.Name) < 2 {
		errs["name"] = "player name must be at least 2 characters"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
