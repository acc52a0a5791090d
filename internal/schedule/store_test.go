package schedule_test

import (
	"testing"

	"github.com/mauv0809/scorebook/internal/database"
	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (schedule.GameStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return schedule.New(db), teardown
}

func strPtr(s string) *string { return &s }

func TestAddAndGetGame(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	added, err := store.AddGame(schedule.NewGame{Name: "Opener", Date: strPtr("2024-04-01"), Location: strPtr("Riverside field")})
	require.NoError(t, err)
	require.NotZero(t, added.ID)

	got, err := store.GetGame(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Opener", got.Name)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2024-04-01", *got.Date)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Riverside field", *got.Location)
}

func TestGetGame_NotFound(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.GetGame(42)
	assert.ErrorIs(t, err, schedule.ErrNotFound)
}

func TestUpdateGame(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	added, err := store.AddGame(schedule.NewGame{Name: "Opener", Date: strPtr("2024-04-01")})
	require.NoError(t, err)

	_, err = store.UpdateGame(added.ID, schedule.NewGame{Name: "Opener", Date: strPtr("2024-04-02")})
	require.NoError(t, err)

	got, err := store.GetGame(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-02", *got.Date)

	_, err = store.UpdateGame(42, schedule.NewGame{Name: "Ghost"})
	assert.ErrorIs(t, err, schedule.ErrNotFound)
}

func TestDeleteGame(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	added, err := store.AddGame(schedule.NewGame{Name: "Opener"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteGame(added.ID))

	_, err = store.GetGame(added.ID)
	assert.ErrorIs(t, err, schedule.ErrNotFound)

	assert.ErrorIs(t, store.DeleteGame(added.ID), schedule.ErrNotFound)
}

func TestListGames_Ordering(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.AddGame(schedule.NewGame{Name: "Old", Date: strPtr("2024-04-01")})
	require.NoError(t, err)
	_, err = store.AddGame(schedule.NewGame{Name: "Unscheduled"})
	require.NoError(t, err)
	_, err = store.AddGame(schedule.NewGame{Name: "Recent", Date: strPtr("2024-05-01")})
	require.NoError(t, err)

	games, err := store.ListGames()
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "Recent", games[0].Name, "dated games newest first")
	assert.Equal(t, "Old", games[1].Name)
	assert.Equal(t, "Unscheduled", games[2].Name, "undated games sort last")
}
