package recipeapi

import (
	"sync"

	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

const detailCacheSize = 100

// detailCache is a bounded, session-scoped id-to-recipe mapping populated
// when recipes surface in search results. It has no durability; eviction is
// oldest-first.
type detailCache struct {
	mu    sync.Mutex
	max   int
	order []string
	byID  map[string]recipe.Recipe
}

func newDetailCache(max int) *detailCache {
	return &detailCache{
		max:  max,
		byID: make(map[string]recipe.Recipe),
	}
}

func (c *detailCache) put(r recipe.Recipe) {
	if r.ID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[r.ID]; !ok {
		c.order = append(c.order, r.ID)
	}
	c.byID[r.ID] = r

	for len(c.order) > c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.byID, oldest)
	}
}

func (c *detailCache) get(id string) (recipe.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.byID[id]
	return r, ok
}
