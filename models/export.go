package models

// ExportDocument is the full logical state serialized to one JSON file. A nil
// collection means the key was absent when exporting, and on import it leaves
// the corresponding key untouched. Importing a previously exported document
// reproduces the same entity set in the same order.
type ExportDocument struct {
	Games      []Game          `json:"games,omitempty"`
	Players    []Player        `json:"players,omitempty"`
	Matches    []Match         `json:"matches,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	Wishlist   []WishlistEntry `json:"wishlist,omitempty"`
	Settings   map[string]any  `json:"settings,omitempty"`
	ExportDate string          `json:"exportDate"`
}
