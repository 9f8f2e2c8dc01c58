package addfavorite

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/webex92-team1/foodmatch-server/internal/auth"
	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

type Request struct {
	Recipe recipe.Recipe `json:"recipe"`
}

type Response struct {
	Favorites []foodmatchdb.FavoriteEntry `json:"favorites"`
}

func NewHandler(profiles *foodmatchdb.ProfileStore) *Handler {
	return &Handler{profiles: profiles}
}

type Handler struct {
	profiles *foodmatchdb.ProfileStore
}

func (h *Handler) AddFavorite(ctx context.Context, req *Request) (*Response, error) {
	favorites, err := h.profiles.UpsertFavorite(ctx, auth.UserID(ctx), req.Recipe)
	if err != nil {
		switch {
		case errors.Is(err, foodmatchdb.ErrInvalidArgument):
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		case errors.Is(err, foodmatchdb.ErrProfileNotFound):
			return nil, httpapi.NewError(http.StatusNotFound, err)
		}
		return nil, fmt.Errorf("addfavorite: %w", err)
	}
	return &Response{Favorites: favorites}, nil
}
