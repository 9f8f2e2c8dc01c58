package getprofile

import (
	"context"
	"fmt"

	"github.com/webex92-team1/foodmatch-server/internal/auth"
	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
)

type Request struct{}

type Response struct {
	// Profile is null when no document exists yet, which callers treat as
	// "not created" rather than an error: account creation at the
	// authenticator can race ahead of profile creation.
	Profile *foodmatchdb.UserProfile `json:"profile"`
}

func NewHandler(profiles *foodmatchdb.ProfileStore) *Handler {
	return &Handler{profiles: profiles}
}

type Handler struct {
	profiles *foodmatchdb.ProfileStore
}

func (h *Handler) GetProfile(ctx context.Context, _ *Request) (*Response, error) {
	profile, err := h.profiles.GetProfile(ctx, auth.UserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("getprofile: %w", err)
	}
	return &Response{Profile: profile}, nil
}
