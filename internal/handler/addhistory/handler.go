package addhistory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/webex92-team1/foodmatch-server/internal/auth"
	"github.com/webex92-team1/foodmatch-server/internal/foodmatchdb"
	"github.com/webex92-team1/foodmatch-server/internal/httpapi"
	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

type Request struct {
	Recipe recipe.Recipe `json:"recipe"`
}

type Response struct {
	Histories []foodmatchdb.HistoryEntry `json:"histories"`
}

// ProfileStore is the slice of the profile store this handler needs.
type ProfileStore interface {
	GetProfile(ctx context.Context, uid string) (*foodmatchdb.UserProfile, error)
	AddHistory(ctx context.Context, uid string, r recipe.Recipe) ([]foodmatchdb.HistoryEntry, error)
}

func NewHandler(profiles ProfileStore) *Handler {
	return &Handler{
		profiles: profiles,
		now:      time.Now,
	}
}

type Handler struct {
	profiles ProfileStore
	now      func() time.Time
}

func (h *Handler) AddHistory(ctx context.Context, req *Request) (*Response, error) {
	return h.record(ctx, auth.UserID(ctx), req.Recipe)
}

// record suppresses same-day re-views at the call site: the store contract
// is move-to-front, which would refresh the date on every view.
func (h *Handler) record(ctx context.Context, uid string, r recipe.Recipe) (*Response, error) {
	if r.ID == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, foodmatchdb.ErrInvalidArgument)
	}

	profile, err := h.profiles.GetProfile(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("addhistory: %w", err)
	}
	if profile == nil {
		return nil, httpapi.NewError(http.StatusNotFound, foodmatchdb.ErrProfileNotFound)
	}

	today := h.now().Format(time.DateOnly)
	if foodmatchdb.HasHistoryOn(profile.Histories, r.ID, today) {
		return &Response{Histories: profile.Histories}, nil
	}

	histories, err := h.profiles.AddHistory(ctx, uid, r)
	if err != nil {
		if errors.Is(err, foodmatchdb.ErrInvalidArgument) {
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		}
		return nil, fmt.Errorf("addhistory: %w", err)
	}
	return &Response{Histories: histories}, nil
}
