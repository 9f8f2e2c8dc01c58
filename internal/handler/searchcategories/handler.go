package searchcategories

import (
	"context"

	"github.com/webex92-team1/foodmatch-server/internal/category"
)

const defaultLimit = 20

type Request struct {
	Query string `json:"query"`

	// Limit caps the result count, defaulting to 20.
	Limit int `json:"limit"`
}

type Response struct {
	Categories []category.Row `json:"categories"`
}

func NewHandler(categories *category.Index) *Handler {
	return &Handler{categories: categories}
}

type Handler struct {
	categories *category.Index
}

func (h *Handler) SearchCategories(ctx context.Context, req *Request) (*Response, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	rows := h.categories.Load(ctx)
	results := category.Search(req.Query, rows, limit)
	if results == nil {
		results = []category.Row{}
	}
	return &Response{Categories: results}, nil
}
