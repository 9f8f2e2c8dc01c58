package shortcuts

import (
	"context"

	"github.com/webex92-team1/foodmatch-server/internal/category"
	"github.com/webex92-team1/foodmatch-server/internal/match"
)

type Request struct{}

type Response struct {
	// PopularCategories are curated category shortcuts.
	PopularCategories []category.Row `json:"popularCategories"`

	// CommonIngredients are curated on-hand ingredient shortcuts.
	CommonIngredients []string `json:"commonIngredients"`
}

func NewHandler() *Handler {
	return &Handler{}
}

type Handler struct{}

func (h *Handler) GetShortcuts(_ context.Context, _ *Request) (*Response, error) {
	return &Response{
		PopularCategories: category.Popular,
		CommonIngredients: match.CommonIngredients,
	}, nil
}
