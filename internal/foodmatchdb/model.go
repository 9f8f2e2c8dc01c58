package foodmatchdb

import "time"

// FavoriteEntry is a favorited recipe in a user's profile document. At most
// one entry exists per recipe ID at any time.
type FavoriteEntry struct {
	// RecipeID is the canonical recipe ID.
	RecipeID string `firestore:"recipeId" json:"recipeId"`

	// Title is the recipe title at save time.
	Title string `firestore:"title" json:"title"`

	// ImageURL is the recipe image URL at save time.
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`

	// Description is the recipe description at save time.
	Description string `firestore:"description" json:"description"`

	// SavedAt is the save date as YYYY-MM-DD.
	SavedAt string `firestore:"savedAt" json:"savedAt"`
}

// HistoryEntry is a viewed recipe in a user's history, ordered most recent
// first. History is a recency-ordered set by recipe ID, not an append log.
type HistoryEntry struct {
	// RecipeID is the canonical recipe ID.
	RecipeID string `firestore:"recipeId" json:"recipeId"`

	// Title is the recipe title at view time.
	Title string `firestore:"title" json:"title"`

	// ImageURL is the recipe image URL at view time.
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`

	// Description is the recipe description at view time.
	Description string `firestore:"description" json:"description"`

	// Date is the view date as YYYY-MM-DD.
	Date string `firestore:"date" json:"date"`
}

// UserProfile is the per-user document stored under users/{uid}. It is
// created once at signup and mutated only through ProfileStore operations.
type UserProfile struct {
	UID   string `firestore:"uid" json:"uid"`
	Email string `firestore:"email" json:"email"`
	Name  string `firestore:"name" json:"name"`

	Favorites []FavoriteEntry `firestore:"favorites" json:"favorites"`
	Histories []HistoryEntry  `firestore:"histories" json:"histories"`

	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// UpsertFavorite removes any existing entry with entry's recipe ID and
// prepends entry: re-adding replaces rather than duplicating, moving the
// entry to the front with a fresh date.
func UpsertFavorite(favorites []FavoriteEntry, entry FavoriteEntry) []FavoriteEntry {
	out := make([]FavoriteEntry, 0, len(favorites)+1)
	out = append(out, entry)
	for _, f := range favorites {
		if f.RecipeID != entry.RecipeID {
			out = append(out, f)
		}
	}
	return out
}

// RemoveFavorite filters out the entry with the given recipe ID. Removing
// an absent ID returns the sequence unchanged.
func RemoveFavorite(favorites []FavoriteEntry, recipeID string) []FavoriteEntry {
	out := make([]FavoriteEntry, 0, len(favorites))
	for _, f := range favorites {
		if f.RecipeID != recipeID {
			out = append(out, f)
		}
	}
	return out
}

// MoveHistoryToFront removes any existing entry with entry's recipe ID and
// prepends entry, keeping history a recency-ordered set.
func MoveHistoryToFront(histories []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(histories)+1)
	out = append(out, entry)
	for _, h := range histories {
		if h.RecipeID != entry.RecipeID {
			out = append(out, h)
		}
	}
	return out
}

// HasHistoryOn reports whether a history entry exists for recipeID on the
// given date. Callers wanting once-per-day recording check this before
// writing; the store itself always moves to front.
func HasHistoryOn(histories []HistoryEntry, recipeID, date string) bool {
	for _, h := range histories {
		if h.RecipeID == recipeID && h.Date == date {
			return true
		}
	}
	return false
}
