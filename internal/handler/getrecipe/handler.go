package getrecipe

import (
	"context"
	"errors"
	"net/http"

	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
	"github.com/webex92-team1/foodmatch-server/internal/recipe"
	"github.com/webex92-team1/foodmatch-server/internal/recipeapi"
)

var errRecipeNotFound = errors.New("recipe not found")

type Request struct {
	RecipeID string `json:"recipeId"`
}

type Response struct {
	Recipe *recipe.Recipe `json:"recipe"`
}

func NewHandler(recipes *recipeapi.Client) *Handler {
	return &Handler{recipes: recipes}
}

type Handler struct {
	recipes *recipeapi.Client
}

func (h *Handler) GetRecipe(ctx context.Context, req *Request) (*Response, error) {
	r, err := h.recipes.Detail(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, httpapi.NewError(http.StatusNotFound, errRecipeNotFound)
	}
	return &Response{Recipe: r}, nil
}
