package categories

// Defaults is the category list seeded on first run. These entries can never
// be removed through normal deletion; user-added categories can.
var Defaults = []string{
	"Abstract",
	"Adventure",
	"Card",
	"Children",
	"Cooperative",
	"Deduction",
	"Duel",
	"Economic",
	"Family",
	"Party",
	"Quiz",
	"Roleplay",
	"Strategy",
	"Wargame",
}

// An early release shipped the deduction category misspelled. The startup
// migration rewrites it wherever it was stored, in the registry and on games.
const (
	LegacyTypo    = "Deducation"
	LegacyTypoFix = "Deduction"
)
