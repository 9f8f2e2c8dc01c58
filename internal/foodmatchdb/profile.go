package foodmatchdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

const usersCollection = "users"

var (
	// ErrProfileExists reports a second CreateProfile call for a uid. The
	// existing document is never overwritten.
	ErrProfileExists = errors.New("foodmatchdb: profile already exists")

	// ErrProfileNotFound reports a mutation against a uid with no profile
	// document.
	ErrProfileNotFound = errors.New("foodmatchdb: profile not found")

	// ErrInvalidArgument reports a caller bug such as an empty uid or
	// recipe ID.
	ErrInvalidArgument = errors.New("foodmatchdb: invalid argument")
)

// ProfileStore manages per-user profile documents. Operations return the
// resulting sequence so callers can mirror local state without a re-read;
// they complete or fail as a whole, partial application is not a state.
type ProfileStore struct {
	store *firestore.Client
	now   func() time.Time
}

func NewProfileStore(store *firestore.Client) *ProfileStore {
	return &ProfileStore{
		store: store,
		now:   time.Now,
	}
}

func (s *ProfileStore) doc(uid string) *firestore.DocumentRef {
	return s.store.Collection(usersCollection).Doc(uid)
}

func (s *ProfileStore) today() string {
	return s.now().Format(time.DateOnly)
}

// CreateProfile creates the profile document with empty favorites and
// histories. A second call for the same uid fails with ErrProfileExists
// rather than clobbering the existing document.
func (s *ProfileStore) CreateProfile(ctx context.Context, uid, email, name string) error {
	if uid == "" {
		return fmt.Errorf("%w: uid is required", ErrInvalidArgument)
	}

	profile := UserProfile{
		UID:       uid,
		Email:     email,
		Name:      name,
		Favorites: []FavoriteEntry{},
		Histories: []HistoryEntry{},
	}
	if _, err := s.doc(uid).Create(ctx, profile); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrProfileExists
		}
		return fmt.Errorf("foodmatchdb: creating profile: %w", err)
	}
	return nil
}

// GetProfile returns the profile for uid, or nil when no document exists.
// A nil profile is a normal condition: the authenticator's account creation
// can race ahead of profile creation.
func (s *ProfileStore) GetProfile(ctx context.Context, uid string) (*UserProfile, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidArgument)
	}

	doc, err := s.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("foodmatchdb: getting profile: %w", err)
	}

	var profile UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("foodmatchdb: decoding profile: %w", err)
	}
	return &profile, nil
}

// UpsertFavorite adds or refreshes the favorite for r, stamped with today's
// date and moved to the front, and returns the resulting sequence. The
// read-modify-write runs in a transaction so concurrent upserts for the
// same uid cannot interleave.
func (s *ProfileStore) UpsertFavorite(ctx context.Context, uid string, r recipe.Recipe) ([]FavoriteEntry, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidArgument)
	}
	if r.ID == "" {
		return nil, fmt.Errorf("%w: recipe ID is required", ErrInvalidArgument)
	}

	entry := FavoriteEntry{
		RecipeID:    r.ID,
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		SavedAt:     s.today(),
	}

	var updated []FavoriteEntry
	err := s.store.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		profile, err := profileInTx(tx, s.doc(uid))
		if err != nil {
			return err
		}
		updated = UpsertFavorite(profile.Favorites, entry)
		return tx.Update(s.doc(uid), []firestore.Update{
			{Path: "favorites", Value: updated},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("foodmatchdb: saving favorite: %w", err)
	}
	return updated, nil
}

// RemoveFavorite removes the favorite with recipeID and returns the
// resulting sequence. Removing an absent ID is a no-op success.
func (s *ProfileStore) RemoveFavorite(ctx context.Context, uid, recipeID string) ([]FavoriteEntry, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidArgument)
	}
	if recipeID == "" {
		return nil, fmt.Errorf("%w: recipe ID is required", ErrInvalidArgument)
	}

	var updated []FavoriteEntry
	err := s.store.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		profile, err := profileInTx(tx, s.doc(uid))
		if err != nil {
			return err
		}
		updated = RemoveFavorite(profile.Favorites, recipeID)
		return tx.Update(s.doc(uid), []firestore.Update{
			{Path: "favorites", Value: updated},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("foodmatchdb: removing favorite: %w", err)
	}
	return updated, nil
}

// AddHistory records a view of r, stamped with today's date and moved to
// the front, and returns the resulting sequence. Same-day duplicate
// suppression is the caller's concern; the store contract is move-to-front.
func (s *ProfileStore) AddHistory(ctx context.Context, uid string, r recipe.Recipe) ([]HistoryEntry, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidArgument)
	}
	if r.ID == "" {
		return nil, fmt.Errorf("%w: recipe ID is required", ErrInvalidArgument)
	}

	entry := HistoryEntry{
		RecipeID:    r.ID,
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Date:        s.today(),
	}

	var updated []HistoryEntry
	err := s.store.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		profile, err := profileInTx(tx, s.doc(uid))
		if err != nil {
			return err
		}
		updated = MoveHistoryToFront(profile.Histories, entry)
		return tx.Update(s.doc(uid), []firestore.Update{
			{Path: "histories", Value: updated},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("foodmatchdb: recording history: %w", err)
	}
	return updated, nil
}

func profileInTx(tx *firestore.Transaction, ref *firestore.DocumentRef) (*UserProfile, error) {
	doc, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	var profile UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}
