package recipe

import (
	"encoding/json"
	"strings"

	"github.com/webex92-team1/foodmatch-server/internal/category"
)

// MaterialList unmarshals the upstream recipeMaterial field, which is an
// array of strings in most responses but a bare string in older records.
type MaterialList []string

func (m *MaterialList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*m = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*m = nil
		return nil
	}
	*m = MaterialList{single}
	return nil
}

// Rakuten is a recipe record as returned by the Rakuten recipe API. The
// bundled sample data uses the same schema.
type Rakuten struct {
	RecipeID           json.Number  `json:"recipeId"`
	RecipeTitle        string       `json:"recipeTitle"`
	FoodImageURL       string       `json:"foodImageUrl"`
	RecipeDescription  string       `json:"recipeDescription"`
	RecipeURL          string       `json:"recipeUrl"`
	RecipeMaterial     MaterialList `json:"recipeMaterial"`
	RecipeInstructions []string     `json:"recipeInstructions"`
	RecipeIndication   string       `json:"recipeIndication"`
	RecipeCost         string       `json:"recipeCost"`
	Rank               string       `json:"rank"`
	Pickup             int          `json:"pickup"`
	Nickname           string       `json:"nickname"`
	CategoryURL        string       `json:"categoryUrl"`
	CategoryID         string       `json:"categoryId"`
}

// FromRakuten maps an upstream record into the canonical form. The category
// is resolved by looking for a known category ID in the record's category
// URL, falling back to the record's own category ID (the sample schema
// carries one) and then CategoryUnknown.
func FromRakuten(raw Rakuten, categories []category.Row) Recipe {
	materials := []string(raw.RecipeMaterial)
	if materials == nil {
		materials = []string{}
	}
	instructions := raw.RecipeInstructions
	if instructions == nil {
		instructions = []string{}
	}

	return Recipe{
		ID:           raw.RecipeID.String(),
		Title:        raw.RecipeTitle,
		ImageURL:     raw.FoodImageURL,
		Description:  raw.RecipeDescription,
		SourceURL:    raw.RecipeURL,
		Materials:    materials,
		Instructions: instructions,
		TimeEstimate: raw.RecipeIndication,
		CostEstimate: raw.RecipeCost,
		Popularity: Popularity{
			IsPickup: raw.Pickup != 0,
			Rank:     raw.Rank,
		},
		Author:     raw.Nickname,
		CategoryID: resolveCategory(raw, categories),
	}
}

func resolveCategory(raw Rakuten, categories []category.Row) string {
	if raw.CategoryURL != "" {
		for _, row := range categories {
			if row.ID != "" && strings.Contains(raw.CategoryURL, row.ID) {
				return row.ID
			}
		}
	}
	if raw.CategoryID != "" {
		return raw.CategoryID
	}
	return CategoryUnknown
}
