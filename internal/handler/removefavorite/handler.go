package removefavorite

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/webex92-team1/foodmatch-server/internal/auth"
	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
)

var errNoProfile = errors.New("profile not found")

type Request struct {
	RecipeID string `json:"recipeId"`
}

type Response struct {
	Favorites []foodmatchdb.FavoriteEntry `json:"favorites"`
}

// ProfileStore is the slice of the profile store this handler needs.
type ProfileStore interface {
	GetProfile(ctx context.Context, uid string) (*foodmatchdb.UserProfile, error)
	RemoveFavorite(ctx context.Context, uid, recipeID string) ([]foodmatchdb.FavoriteEntry, error)
}

func NewHandler(profiles ProfileStore) *Handler {
	return &Handler{profiles: profiles}
}

type Handler struct {
	profiles ProfileStore
}

func (h *Handler) RemoveFavorite(ctx context.Context, req *Request) (*Response, error) {
	return h.remove(ctx, auth.UserID(ctx), req.RecipeID)
}

// remove mirrors the removal optimistically against the fetched snapshot
// and reconciles with the store write: the response is served from the
// local mirror on success, and the snapshot is reverted on failure.
func (h *Handler) remove(ctx context.Context, uid, recipeID string) (*Response, error) {
	if recipeID == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, foodmatchdb.ErrInvalidArgument)
	}

	profile, err := h.profiles.GetProfile(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("removefavorite: %w", err)
	}
	if profile == nil {
		return nil, httpapi.NewError(http.StatusNotFound, errNoProfile)
	}

	opt := foodmatchdb.ApplyOptimistic(profile.Favorites, func(favorites []foodmatchdb.FavoriteEntry) []foodmatchdb.FavoriteEntry {
		return foodmatchdb.RemoveFavorite(favorites, recipeID)
	})
	favorites, err := opt.Commit(func() error {
		_, err := h.profiles.RemoveFavorite(ctx, uid, recipeID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("removefavorite: removing favorite: %w", err)
	}
	return &Response{Favorites: favorites}, nil
}
