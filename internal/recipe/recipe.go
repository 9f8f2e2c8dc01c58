package recipe

// CategoryUnknown is the sentinel category ID for recipes whose source
// category could not be resolved against the category table.
const CategoryUnknown = "unknown"

// Popularity carries the upstream ranking signals for a recipe.
type Popularity struct {
	// IsPickup reports whether the source featured the recipe.
	IsPickup bool `json:"isPickup"`

	// Rank is the source ranking position as free-form text.
	Rank string `json:"rank"`
}

// Recipe is the canonical recipe record consumed by all presentation code,
// regardless of originating source. Unmapped source fields default to empty
// strings and empty slices, never null.
type Recipe struct {
	// ID is the recipe identifier, stringified from the source record.
	ID string `json:"id"`

	// Title is the recipe title.
	Title string `json:"title"`

	// ImageURL is the URL of the main recipe image.
	ImageURL string `json:"imageUrl"`

	// Description is the recipe description.
	Description string `json:"description"`

	// SourceURL is the URL of the recipe page at the source.
	SourceURL string `json:"sourceUrl"`

	// Materials are the raw material lines, e.g. "卵 3個".
	Materials []string `json:"materials"`

	// Instructions are the preparation steps. The free API tier omits
	// them, so upstream records usually map to an empty slice.
	Instructions []string `json:"instructions"`

	// TimeEstimate is the preparation time as free-form text.
	TimeEstimate string `json:"timeEstimate"`

	// CostEstimate is the cost as free-form text.
	CostEstimate string `json:"costEstimate"`

	// Popularity carries the source ranking signals.
	Popularity Popularity `json:"popularity"`

	// Author is the nickname of the recipe author.
	Author string `json:"author"`

	// CategoryID is the resolved category ID, or CategoryUnknown.
	CategoryID string `json:"categoryId"`
}
