package wishlist

import (
	"fmt"
	"log"
	"time"

	"Meeple/models"
	"Meeple/services/games"
	"Meeple/services/store"
	"Meeple/utils"
)

// Service is the wishlist repository. Entries live under their own storage
// namespace, apart from the four core collections.
type Service struct {
	store store.Store
}

func New(s store.Store) *Service {
	return &Service{store: s}
}

// Input carries the wishlist form fields.
type Input struct {
	Name     string
	PhotoRef string
	Price    float64
	Priority models.Priority
	Link     string
	Notes    string
}

func (s *Service) load() ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if _, err := store.LoadJSON(s.store, store.KeyWishlist, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) List() ([]models.WishlistEntry, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*models.WishlistEntry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Service) Create(in Input) (*models.WishlistEntry, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	entry := models.WishlistEntry{
		ID:        utils.NewID("wishlist"),
		Name:      in.Name,
		PhotoRef:  in.PhotoRef,
		Price:     in.Price,
		Priority:  priorityOrDefault(in.Priority),
		Link:      in.Link,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	entries = append(entries, entry)
	if err := store.SaveJSON(s.store, store.KeyWishlist, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) Update(id string, in Input) (*models.WishlistEntry, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			now := time.Now()
			entries[i].Name = in.Name
			entries[i].PhotoRef = in.PhotoRef
			entries[i].Price = in.Price
			entries[i].Priority = priorityOrDefault(in.Priority)
			entries[i].Link = in.Link
			entries[i].Notes = in.Notes
			entries[i].UpdatedAt = &now
			if err := store.SaveJSON(s.store, store.KeyWishlist, entries); err != nil {
				return nil, err
			}
			updated := entries[i]
			return &updated, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Service) Delete(id string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]models.WishlistEntry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return models.ErrNotFound
	}
	return store.SaveJSON(s.store, store.KeyWishlist, kept)
}

// Promote moves an entry into the collection as a new game under the category
// the user picked, purchase-dated today. The sequence stays two independent
// writes, but guarded: when the game insert fails the entry is left untouched,
// so nothing is lost. If the insert succeeds and the entry removal then fails,
// the game stays and the leftover entry is reported for the caller to surface
// (duplication, not data loss).
func (s *Service) Promote(id, category string, collection *games.Service) (*models.Game, error) {
	entry, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	in := games.Input{
		Name:         entry.Name,
		Category:     category,
		PhotoRef:     entry.PhotoRef,
		PurchaseDate: utils.TodayISO(time.Now()),
		Notes:        entry.Notes,
	}
	if entry.Price > 0 {
		price := entry.Price
		in.Price = &price
	}

	game, err := collection.Create(in)
	if err != nil {
		return nil, err
	}

	if err := s.Delete(id); err != nil {
		return game, fmt.Errorf("game %s created but wishlist entry %s could not be removed: %v", game.ID, id, err)
	}
	log.Printf("Wishlist entry promoted: %s -> game %s", id, game.ID)
	return game, nil
}

func validate(in Input) error {
	errs := models.ValidationErrors{}
	if in.Name == "" {
		errs["name"] = "name is required"
	}
	if in.Price < 0 {
		errs["price"] = "price cannot be negative"
	}
	if in.Priority != "" && !in.Priority.Valid() {
		errs["priority"] = "priority must be high, medium or low"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func priorityOrDefault(p models.Priority) models.Priority {
	if p == "" {
		return models.PriorityMedium
	}
	return p
}
