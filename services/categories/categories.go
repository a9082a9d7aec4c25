package categories

import (
	"fmt"
	"log"
	"sort"

	catconst "Meeple/constants/categories"
	"Meeple/models"
	"Meeple/services/store"
)

// Registry manages the mutable category list games are tagged with. It is a
// stateless view over the store: every call re-reads the persisted list.
type Registry struct {
	store store.Store
}

func New(s store.Store) *Registry {
	return &Registry{store: s}
}

// InitializeDefaults seeds the fixed default list on first run. An existing
// list, even an empty one, is left alone.
func (r *Registry) InitializeDefaults() error {
	var existing []string
	found, err := store.LoadJSON(r.store, store.KeyCategories, &existing)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	if err := store.SaveJSON(r.store, store.KeyCategories, catconst.Defaults); err != nil {
		return err
	}
	log.Printf("Categories initialized with %d defaults", len(catconst.Defaults))
	return nil
}

// All returns the stored list, or the defaults when nothing was seeded yet.
func (r *Registry) All() ([]string, error) {
	var stored []string
	found, err := store.LoadJSON(r.store, store.KeyCategories, &stored)
	if err != nil {
		return nil, err
	}
	if !found {
		return append([]string(nil), catconst.Defaults...), nil
	}
	return stored, nil
}

// Contains reports whether name is currently a registered category.
func (r *Registry) Contains(name string) (bool, error) {
	all, err := r.All()
	if err != nil {
		return false, err
	}
	for _, c := range all {
		if c == name {
			return true, nil
		}
	}
	return false, nil
}

// IsDefault reports whether name belongs to the immutable default set.
func IsDefault(name string) bool {
	for _, c := range catconst.Defaults {
		if c == name {
			return true
		}
	}
	return false
}

// Add inserts a new category and re-sorts the list lexicographically.
// Duplicates are matched case-sensitively.
func (r *Registry) Add(name string) error {
	if name == "" {
		return models.ValidationErrors{"category": "category name is required"}
	}
	all, err := r.All()
	if err != nil {
		return err
	}
	for _, c := range all {
		if c == name {
			return models.ValidationErrors{"category": "category already exists"}
		}
	}
	all = append(all, name)
	sort.Strings(all)
	return store.SaveJSON(r.store, store.KeyCategories, all)
}

// Remove deletes a user-added category. Defaults are rejected. Games still
// referencing the removed name keep it as a dangling label; they are not
// touched here.
func (r *Registry) Remove(name string) error {
	if IsDefault(name) {
		return fmt.Errorf("cannot remove default category %q", name)
	}
	all, err := r.All()
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(all))
	for _, c := range all {
		if c != name {
			kept = append(kept, c)
		}
	}
	return store.SaveJSON(r.store, store.KeyCategories, kept)
}

// FixLegacyTypo is the one-time startup migration rewriting the misspelled
// legacy category, both in the registry and on stored games. It is idempotent
// and persists only when something actually changed.
func (r *Registry) FixLegacyTypo() error {
	var stored []string
	found, err := store.LoadJSON(r.store, store.KeyCategories, &stored)
	if err != nil {
		return err
	}
	if found {
		changed := false
		for i, c := range stored {
			if c == catconst.LegacyTypo {
				stored[i] = catconst.LegacyTypoFix
				changed = true
			}
		}
		if changed {
			log.Printf("Fixing category typo: %s -> %s", catconst.LegacyTypo, catconst.LegacyTypoFix)
			if err := store.SaveJSON(r.store, store.KeyCategories, stored); err != nil {
				return err
			}
		}
	}

	var games []models.Game
	found, err = store.LoadJSON(r.store, store.KeyGames, &games)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	changed := false
	for i := range games {
		if games[i].Category == catconst.LegacyTypo {
			games[i].Category = catconst.LegacyTypoFix
			changed = true
		}
	}
	if changed {
		return store.SaveJSON(r.store, store.KeyGames, games)
	}
	return nil
}
