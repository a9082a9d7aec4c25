package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"Meeple/models"
	"Meeple/services/store"
)

// Service serializes the full logical state to one JSON document and restores
// from one. This is the only file format the tracker has, so the shape is
// stable: importing a previously exported document reproduces the same entity
// set in the same order.
type Service struct {
	store store.Store
}

func New(s store.Store) *Service {
	return &Service{store: s}
}

// Export snapshots all five collections plus settings, stamped with the
// export time. Keys never written stay absent from the document.
func (s *Service) Export() ([]byte, error) {
	doc := models.ExportDocument{
		ExportDate: time.Now().Format(time.RFC3339),
	}
	if _, err := store.LoadJSON(s.store, store.KeyGames, &doc.Games); err != nil {
		return nil, err
	}
	if _, err := store.LoadJSON(s.store, store.KeyPlayers, &doc.Players); err != nil {
		return nil, err
	}
	if _, err := store.LoadJSON(s.store, store.KeyMatches, &doc.Matches); err != nil {
		return nil, err
	}
	if _, err := store.LoadJSON(s.store, store.KeyCategories, &doc.Categories); err != nil {
		return nil, err
	}
	if _, err := store.LoadJSON(s.store, store.KeyWishlist, &doc.Wishlist); err != nil {
		return nil, err
	}
	if _, err := store.LoadJSON(s.store, store.KeySettings, &doc.Settings); err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import restores every collection present in the document. Absent keys leave
// the store untouched. A malformed document aborts before any write.
func (s *Service) Import(data []byte) error {
	var doc models.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing import document: %v", err)
	}

	if doc.Games != nil {
		if err := store.SaveJSON(s.store, store.KeyGames, doc.Games); err != nil {
			return err
		}
	}
	if doc.Players != nil {
		if err := store.SaveJSON(s.store, store.KeyPlayers, doc.Players); err != nil {
			return err
		}
	}
	if doc.Matches != nil {
		if err := store.SaveJSON(s.store, store.KeyMatches, doc.Matches); err != nil {
			return err
		}
	}
	if doc.Categories != nil {
		if err := store.SaveJSON(s.store, store.KeyCategories, doc.Categories); err != nil {
			return err
		}
	}
	if doc.Wishlist != nil {
		if err := store.SaveJSON(s.store, store.KeyWishlist, doc.Wishlist); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := store.SaveJSON(s.store, store.KeySettings, doc.Settings); err != nil {
			return err
		}
	}
	return nil
}
