package games

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Meeple/models"
	"Meeple/services/categories"
	"Meeple/services/store"
	"Meeple/utils"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	r := categories.New(s)
	require.NoError(t, r.InitializeDefaults())
	return New(s, r), s
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(Input{
		Name:       "Catan",
		Category:   "Strategy",
		MinPlayers: intPtr(3),
		MaxPlayers: intPtr(4),
		Price:      floatPtr(45),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	loaded, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, "Catan", loaded.Name)
	assert.Equal(t, "Strategy", loaded.Category)
	assert.Equal(t, 3, *loaded.MinPlayers)
	assert.Equal(t, 45.0, *loaded.Price)

	t.Run("ids are unique across creations", func(t *testing.T) {
		other, err := svc.Create(Input{Name: "Azul", Category: "Abstract"})
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, other.ID)
	})
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"missing name", Input{Category: "Strategy"}, "name"},
		{"missing category", Input{Name: "Catan"}, "category"},
		{"unknown category", Input{Name: "Catan", Category: "Nope"}, "category"},
		{"negative price", Input{Name: "Catan", Category: "Strategy", Price: floatPtr(-5)}, "price"},
		{"future purchase date", Input{Name: "Catan", Category: "Strategy", PurchaseDate: utils.TodayISO(time.Now().Add(48 * time.Hour))}, "purchaseDate"},
		{"max below min", Input{Name: "Catan", Category: "Strategy", MinPlayers: intPtr(4), MaxPlayers: intPtr(2)}, "players"},
		{"zero avg duration", Input{Name: "Catan", Category: "Strategy", AvgDuration: intPtr(0)}, "avgDuration"},
		{"duplicate roles", Input{Name: "Catan", Category: "Strategy", Roles: []string{"Thief", "Thief"}}, "roles"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.in)
			var verr models.ValidationErrors
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tc.field)
		})
	}

	games, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, games, "no partial writes on validation failure")
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(Input{Name: "Catan", Category: "Strategy"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, Input{
		Name:     "Catan: Seafarers",
		Category: "Strategy",
		Roles:    []string{"Explorer", "Trader"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Catan: Seafarers", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	_, err = svc.Update("game_missing", Input{Name: "X", Category: "Strategy"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteDoesNotCascade(t *testing.T) {
	svc, s := newTestService(t)

	created, err := svc.Create(Input{Name: "Catan", Category: "Strategy"})
	require.NoError(t, err)

	// A match referencing the game, stored directly for the scenario.
	match := models.Match{ID: "match_1", GameID: created.ID, Date: "2025-01-10",
		Results: []models.Result{{PlayerID: "player_1", Score: 10}}}
	require.NoError(t, store.SaveJSON(s, store.KeyMatches, []models.Match{match}))

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	var matches []models.Match
	_, err = store.LoadJSON(s, store.KeyMatches, &matches)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, created.ID, matches[0].GameID, "orphaned match keeps its gameId unchanged")

	assert.ErrorIs(t, svc.Delete(created.ID), models.ErrNotFound)
}

func TestPersistenceFailure(t *testing.T) {
	svc, s := newTestService(t)
	s.FailWrites = true

	_, err := svc.Create(Input{Name: "Catan", Category: "Strategy"})
	var perr *models.PersistenceError
	require.ErrorAs(t, err, &perr)

	s.FailWrites = false
	games, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, games, "nothing saved after a failed write")
}
