package foodmatchdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertFavorite(t *testing.T) {
	a := FavoriteEntry{RecipeID: "a", Title: "A", SavedAt: "2026-08-01"}
	b := FavoriteEntry{RecipeID: "b", Title: "B", SavedAt: "2026-08-02"}

	favorites := UpsertFavorite(nil, a)
	favorites = UpsertFavorite(favorites, b)
	require.Len(t, favorites, 2)
	assert.Equal(t, "b", favorites[0].RecipeID)

	// Re-adding replaces the existing entry and moves it to the front.
	a2 := FavoriteEntry{RecipeID: "a", Title: "A", SavedAt: "2026-08-29"}
	favorites = UpsertFavorite(favorites, a2)
	require.Len(t, favorites, 2)
	assert.Equal(t, "a", favorites[0].RecipeID)
	assert.Equal(t, "2026-08-29", favorites[0].SavedAt)
	assert.Equal(t, "b", favorites[1].RecipeID)
}

func TestRemoveFavorite(t *testing.T) {
	favorites := []FavoriteEntry{{RecipeID: "a"}, {RecipeID: "b"}}

	got := RemoveFavorite(favorites, "a")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].RecipeID)

	// Absent ID is a no-op.
	got = RemoveFavorite(got, "zzz")
	require.Len(t, got, 1)

	assert.Empty(t, RemoveFavorite(nil, "a"))
}

func TestMoveHistoryToFront(t *testing.T) {
	a := HistoryEntry{RecipeID: "a", Date: "2026-08-01"}
	b := HistoryEntry{RecipeID: "b", Date: "2026-08-02"}

	histories := MoveHistoryToFront(nil, a)
	histories = MoveHistoryToFront(histories, b)
	require.Len(t, histories, 2)
	assert.Equal(t, "b", histories[0].RecipeID)

	// Viewing a again moves it to the front with the new date, no duplicate.
	a2 := HistoryEntry{RecipeID: "a", Date: "2026-08-29"}
	histories = MoveHistoryToFront(histories, a2)
	require.Len(t, histories, 2)
	assert.Equal(t, "a", histories[0].RecipeID)
	assert.Equal(t, "2026-08-29", histories[0].Date)
	assert.Equal(t, "b", histories[1].RecipeID)
}

func TestHasHistoryOn(t *testing.T) {
	histories := []HistoryEntry{{RecipeID: "a", Date: "2026-08-29"}}

	assert.True(t, HasHistoryOn(histories, "a", "2026-08-29"))
	assert.False(t, HasHistoryOn(histories, "a", "2026-08-28"))
	assert.False(t, HasHistoryOn(histories, "b", "2026-08-29"))
	assert.False(t, HasHistoryOn(nil, "a", "2026-08-29"))
}
