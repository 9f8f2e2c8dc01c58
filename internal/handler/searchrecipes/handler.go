package searchrecipes

import (
	"context"

	"github.com/webex92-team1/foodmatch-server/internal/recipe"
	"github.com/webex92-team1/foodmatch-server/internal/recipeapi"
)

type Request struct {
	// CategoryID selects the upstream category ranking. Takes precedence
	// over Ingredients when both are set.
	CategoryID string `json:"categoryId"`

	// Ingredients are free-text on-hand ingredient keywords.
	Ingredients []string `json:"ingredients"`
}

type Response struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

func NewHandler(recipes *recipeapi.Client) *Handler {
	return &Handler{recipes: recipes}
}

type Handler struct {
	recipes *recipeapi.Client
}

func (h *Handler) SearchRecipes(ctx context.Context, req *Request) (*Response, error) {
	var (
		found []recipe.Recipe
		err   error
	)
	if req.CategoryID != "" {
		found, err = h.recipes.SearchByCategory(ctx, req.CategoryID)
	} else {
		found, err = h.recipes.SearchByIngredients(ctx, req.Ingredients)
	}
	if err != nil {
		// Only cancellation reaches here; the gateway absorbs the rest.
		return nil, err
	}

	for _, r := range found {
		h.recipes.CacheForDetail(r)
	}
	return &Response{Recipes: found}, nil
}
