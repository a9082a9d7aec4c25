package matches

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Meeple/models"
	"Meeple/services/categories"
	"Meeple/services/games"
	"Meeple/services/store"
	"Meeple/utils"
)

func intPtr(v int) *int { return &v }

func newTestService(t *testing.T) (*Service, *games.Service, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	r := categories.New(s)
	require.NoError(t, r.InitializeDefaults())
	g := games.New(s, r)
	return New(s, g), g, s
}

func testGame(t *testing.T, g *games.Service, roles ...string) *models.Game {
	t.Helper()
	game, err := g.Create(games.Input{Name: "Catan", Category: "Strategy", Roles: roles})
	require.NoError(t, err)
	return game
}

func TestCreate(t *testing.T) {
	svc, g, _ := newTestService(t)
	game := testGame(t, g)

	created, err := svc.Create(Input{
		GameID:   game.ID,
		Date:     "2025-03-01",
		Duration: intPtr(90),
		Rating:   intPtr(8),
		Results: []models.Result{
			{PlayerID: "player_1", Score: 10, IsWinner: true},
			{PlayerID: "player_2", Score: 7},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	loaded, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, loaded.GameID)
	assert.Equal(t, 8, *loaded.Rating)
	assert.Len(t, loaded.Results, 2)
}

func TestValidation(t *testing.T) {
	svc, g, _ := newTestService(t)
	game := testGame(t, g)
	okResults := []models.Result{{PlayerID: "player_1", Score: 1}}

	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"missing game", Input{Date: "2025-03-01", Results: okResults}, "game"},
		{"unknown game", Input{GameID: "game_missing", Date: "2025-03-01", Results: okResults}, "game"},
		{"no participants", Input{GameID: game.ID, Date: "2025-03-01"}, "players"},
		{"duplicate participant", Input{GameID: game.ID, Date: "2025-03-01", Results: []models.Result{
			{PlayerID: "player_1", Score: 3},
			{PlayerID: "player_1", Score: 5},
		}}, "players"},
		{"missing date", Input{GameID: game.ID, Results: okResults}, "date"},
		{"future date", Input{GameID: game.ID, Date: utils.TodayISO(time.Now().Add(48 * time.Hour)), Results: okResults}, "date"},
		{"bad date format", Input{GameID: game.ID, Date: "01.03.2025", Results: okResults}, "date"},
		{"zero duration", Input{GameID: game.ID, Date: "2025-03-01", Duration: intPtr(0), Results: okResults}, "duration"},
		{"rating too low", Input{GameID: game.ID, Date: "2025-03-01", Rating: intPtr(0), Results: okResults}, "rating"},
		{"rating too high", Input{GameID: game.ID, Date: "2025-03-01", Rating: intPtr(11), Results: okResults}, "rating"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.in)
			var verr models.ValidationErrors
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tc.field)
		})
	}

	matches, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRoleDriftAccepted(t *testing.T) {
	svc, g, _ := newTestService(t)
	game := testGame(t, g, "Settler", "Trader")

	roles, err := svc.RolesFor(game.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Settler", "Trader"}, roles)

	// A role outside the game's current list is stored as-is; drift between
	// the game's role list and recorded matches is tolerated.
	created, err := svc.Create(Input{
		GameID: game.ID,
		Date:   "2025-03-01",
		Results: []models.Result{
			{PlayerID: "player_1", Score: 10, Role: "Pirate"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pirate", created.Results[0].Role)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, g, _ := newTestService(t)
	game := testGame(t, g)

	created, err := svc.Create(Input{
		GameID:  game.ID,
		Date:    "2025-03-01",
		Results: []models.Result{{PlayerID: "player_1", Score: 4}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, Input{
		GameID:  game.ID,
		Date:    "2025-03-02",
		Results: []models.Result{{PlayerID: "player_1", Score: 4, IsWinner: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", updated.Date)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = svc.Update("match_missing", Input{GameID: game.ID, Date: "2025-03-01",
		Results: []models.Result{{PlayerID: "player_1", Score: 1}}})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, svc.Delete(created.ID))
	assert.ErrorIs(t, svc.Delete(created.ID), models.ErrNotFound)
}

func TestOrphanedMatchOnlyDeletable(t *testing.T) {
	svc, g, _ := newTestService(t)
	game := testGame(t, g)

	created, err := svc.Create(Input{
		GameID:  game.ID,
		Date:    "2025-03-01",
		Results: []models.Result{{PlayerID: "player_1", Score: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, g.Delete(game.ID))

	// The match is still stored with its gameId unchanged...
	loaded, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, loaded.GameID)

	// ...editing it fails because the game reference no longer resolves...
	_, err = svc.Update(created.ID, Input{GameID: game.ID, Date: "2025-03-02",
		Results: []models.Result{{PlayerID: "player_1", Score: 4}}})
	var verr models.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "game")

	// ...but deleting it still works.
	assert.NoError(t, svc.Delete(created.ID))
}

func TestByGameAndByPlayer(t *testing.T) {
	svc, g, _ := newTestService(t)
	catan := testGame(t, g)
	azul, err := g.Create(games.Input{Name: "Azul", Category: "Abstract"})
	require.NoError(t, err)

	_, err = svc.Create(Input{GameID: catan.ID, Date: "2025-03-01",
		Results: []models.Result{{PlayerID: "player_1", Score: 4}}})
	require.NoError(t, err)
	_, err = svc.Create(Input{GameID: azul.ID, Date: "2025-03-02",
		Results: []models.Result{{PlayerID: "player_2", Score: 9}}})
	require.NoError(t, err)

	byGame, err := svc.ByGame(catan.ID)
	require.NoError(t, err)
	require.Len(t, byGame, 1)
	assert.Equal(t, catan.ID, byGame[0].GameID)

	byPlayer, err := svc.ByPlayer("player_2")
	require.NoError(t, err)
	require.Len(t, byPlayer, 1)
	assert.Equal(t, azul.ID, byPlayer[0].GameID)
}

func TestSortByDate(t *testing.T) {
	ms := []models.Match{
		{ID: "m1", Date: "2025-01-10"},
		{ID: "m2", Date: "2025-03-05"},
		{ID: "m3", Date: "2025-01-10"},
	}
	SortByDate(ms, true)
	assert.Equal(t, "m2", ms[0].ID)
	assert.Equal(t, "m1", ms[1].ID, "stable for same-day matches")
	assert.Equal(t, "m3", ms[2].ID)

	SortByDate(ms, false)
	assert.Equal(t, "m2", ms[2].ID)
}
