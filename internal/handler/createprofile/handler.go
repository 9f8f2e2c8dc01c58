package createprofile

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/webex92-team1/foodmatch-server/internal/auth"
	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
)

type Request struct {
	Name string `json:"name"`
}

type Response struct{}

func NewHandler(profiles *foodmatchdb.ProfileStore) *Handler {
	return &Handler{profiles: profiles}
}

type Handler struct {
	profiles *foodmatchdb.ProfileStore
}

// CreateProfile is the authenticator's post-registration hook. Calling it
// again for an existing account conflicts instead of clobbering favorites.
func (h *Handler) CreateProfile(ctx context.Context, req *Request) (*Response, error) {
	uid := auth.UserID(ctx)
	if err := h.profiles.CreateProfile(ctx, uid, auth.Email(ctx), req.Name); err != nil {
		switch {
		case errors.Is(err, foodmatchdb.ErrProfileExists):
			return nil, httpapi.NewError(http.StatusConflict, err)
		case errors.Is(err, foodmatchdb.ErrInvalidArgument):
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		}
		return nil, fmt.Errorf("createprofile: %w", err)
	}
	return &Response{}, nil
}
