package removefavorite

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
)

type fakeProfileStore struct {
	profile   *foodmatchdb.UserProfile
	getErr    error
	removed   []string
	removeErr error
}

func (s *fakeProfileStore) GetProfile(_ context.Context, _ string) (*foodmatchdb.UserProfile, error) {
	return s.profile, s.getErr
}

func (s *fakeProfileStore) RemoveFavorite(_ context.Context, _, recipeID string) ([]foodmatchdb.FavoriteEntry, error) {
	s.removed = append(s.removed, recipeID)
	return nil, s.removeErr
}

func TestRemove(t *testing.T) {
	favorites := []foodmatchdb.FavoriteEntry{{RecipeID: "r1"}, {RecipeID: "r2"}}

	t.Run("removes and answers from the local mirror", func(t *testing.T) {
		store := &fakeProfileStore{profile: &foodmatchdb.UserProfile{UID: "u1", Favorites: favorites}}
		h := NewHandler(store)

		resp, err := h.remove(context.Background(), "u1", "r1")
		require.NoError(t, err)
		assert.Equal(t, []string{"r1"}, store.removed)
		require.Len(t, resp.Favorites, 1)
		assert.Equal(t, "r2", resp.Favorites[0].RecipeID)
	})

	t.Run("write failure reverts to the snapshot", func(t *testing.T) {
		store := &fakeProfileStore{
			profile:   &foodmatchdb.UserProfile{UID: "u1", Favorites: favorites},
			removeErr: errors.New("firestore down"),
		}
		h := NewHandler(store)

		_, err := h.remove(context.Background(), "u1", "r1")
		assert.Error(t, err)
	})

	t.Run("missing recipe id", func(t *testing.T) {
		h := NewHandler(&fakeProfileStore{})

		_, err := h.remove(context.Background(), "u1", "")
		var httpErr *httpapi.Error
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	t.Run("no profile", func(t *testing.T) {
		h := NewHandler(&fakeProfileStore{})

		_, err := h.remove(context.Background(), "u1", "r1")
		var httpErr *httpapi.Error
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})
}
