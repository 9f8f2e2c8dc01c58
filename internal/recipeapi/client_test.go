package recipeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webex92-team1/foodmatch-server/internal/category"
	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

type staticSource string

func (s staticSource) Load(_ context.Context) (string, error) {
	return string(s), nil
}

const testTable = "categoryId\tcategoryName\tcategoryUrl\n" +
	"30-307\tカレー\thttps://recipe.rakuten.co.jp/category/30-307/\n"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-app-id", category.NewIndex(staticSource(testTable)))
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()
	return c
}

func TestSearchByCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, categoryRankingPath, r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "test-app-id", r.URL.Query().Get("applicationId"))
		assert.Equal(t, "30-307", r.URL.Query().Get("categoryId"))

		_, _ = w.Write([]byte(`{"result":[{
			"recipeId":1234567890,
			"recipeTitle":"basic curry",
			"recipeMaterial":["卵 3個"],
			"categoryUrl":"https://recipe.rakuten.co.jp/category/30-307/"
		}]}`))
	})

	got, err := c.SearchByCategory(context.Background(), "30-307")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1234567890", got[0].ID)
	assert.Equal(t, "basic curry", got[0].Title)
	assert.Equal(t, []string{"卵 3個"}, got[0].Materials)
	assert.Equal(t, "30-307", got[0].CategoryID)
}

func TestSearchByCategory_EmptyID(t *testing.T) {
	c := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("unexpected upstream request")
	})

	got, err := c.SearchByCategory(context.Background(), "  ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchByCategory_NoCredential(t *testing.T) {
	c := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("unexpected upstream request")
	})
	c.AppID = ""

	got, err := c.SearchByCategory(context.Background(), "30-307")
	require.NoError(t, err)
	assert.Len(t, got, len(recipe.Samples()))
}

func TestSearchByCategory_UpstreamStatusError(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	got, err := c.SearchByCategory(context.Background(), "30-307")
	require.NoError(t, err)
	assert.Len(t, got, len(recipe.Samples()))
	// HTTP errors are final, not retried.
	assert.Equal(t, 1, calls)
}

func TestSearchByCategory_ErrorPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"wrong_parameter","error_description":"specify valid categoryId"}`))
	})

	got, err := c.SearchByCategory(context.Background(), "30-307")
	require.NoError(t, err)
	assert.Len(t, got, len(recipe.Samples()))
}

func TestSearchByCategory_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient("test-app-id", category.NewIndex(staticSource(testTable)))
	c.BaseURL = srv.URL

	got, err := c.SearchByCategory(context.Background(), "30-307")
	require.NoError(t, err)
	assert.Len(t, got, len(recipe.Samples()))
}

func TestSearchByCategory_Cancellation(t *testing.T) {
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	got, err := c.SearchByCategory(ctx, "30-307")
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got, "cancellation must not substitute sample data")
}

func TestSearchByIngredients(t *testing.T) {
	t.Run("first ingredient resolving to a category delegates upstream", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "30-307", r.URL.Query().Get("categoryId"))
			_, _ = w.Write([]byte(`{"result":[{"recipeId":1,"recipeTitle":"curry"}]}`))
		})

		got, err := c.SearchByIngredients(context.Background(), []string{"カレー", "卵"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "curry", got[0].Title)
	})

	t.Run("no category match ranks the sample corpus", func(t *testing.T) {
		c := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("unexpected upstream request")
		})

		got, err := c.SearchByIngredients(context.Background(), []string{"卵"})
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, r := range got {
			assert.NotEmpty(t, r.ID)
		}
	})

	t.Run("blank ingredients yield an empty result", func(t *testing.T) {
		c := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("unexpected upstream request")
		})

		got, err := c.SearchByIngredients(context.Background(), []string{" ", ""})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDetail(t *testing.T) {
	c := NewClient("test-app-id", category.NewIndex(staticSource(testTable)))

	t.Run("cached from search results", func(t *testing.T) {
		c.CacheForDetail(recipe.Recipe{ID: "cached-1", Title: "cached"})
		got, err := c.Detail(context.Background(), "cached-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "cached", got.Title)
	})

	t.Run("falls back to sample data", func(t *testing.T) {
		sample := recipe.Samples()[0]
		got, err := c.Detail(context.Background(), sample.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sample.Title, got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := c.Detail(context.Background(), "no-such-recipe")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Detail(ctx, "cached-1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDetailCacheEviction(t *testing.T) {
	cache := newDetailCache(2)
	cache.put(recipe.Recipe{ID: "a"})
	cache.put(recipe.Recipe{ID: "b"})
	cache.put(recipe.Recipe{ID: "c"})

	_, ok := cache.get("a")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = cache.get("b")
	assert.True(t, ok)
	_, ok = cache.get("c")
	assert.True(t, ok)

	// Re-putting refreshes the value without duplicating the slot.
	cache.put(recipe.Recipe{ID: "b", Title: "updated"})
	got, ok := cache.get("b")
	require.True(t, ok)
	assert.Equal(t, "updated", got.Title)
}

func TestUpstreamError(t *testing.T) {
	assert.Contains(t, (&UpstreamError{Status: 429}).Error(), "429")
	assert.Contains(t, (&UpstreamError{Code: "wrong_parameter", Description: "bad id"}).Error(), "wrong_parameter")

	cause := context.DeadlineExceeded
	err := &UpstreamError{Err: cause}
	assert.ErrorIs(t, err, cause)
}
