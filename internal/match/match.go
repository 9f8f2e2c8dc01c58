package match

import (
	"sort"
	"strings"

	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

// CommonIngredients is the curated list of on-hand ingredient shortcuts
// surfaced by the UI.
var CommonIngredients = []string{
	"卵",
	"玉ねぎ",
	"牛乳",
	"にんじん",
	"じゃがいも",
	"鶏肉",
	"トマト",
	"チーズ",
	"キャベツ",
	"豚肉",
}

// Result is the outcome of matching a user's on-hand ingredients against a
// recipe's material list.
type Result struct {
	// Matched are the on-hand ingredients found in the material list.
	Matched []string `json:"matched"`

	// Missing are the material names not covered by any on-hand ingredient.
	Missing []string `json:"missing"`

	// Ratio is matched over total materials, in [0, 1].
	Ratio float64 `json:"matchRatio"`

	// FullyCoverable reports whether no material is missing.
	FullyCoverable bool `json:"isFullyCoverable"`
}

// Markers used to group materials in source data, e.g. "☆醤油 大さじ3".
var markerStripper = strings.NewReplacer(
	"☆", "", "★", "", "◎", "", "○", "", "●", "", "◇", "", "◆", "", "※", "",
)

// MaterialName extracts the bare ingredient name from a raw material line:
// the token before the first quantity separator, with grouping markers
// stripped. "☆醤油 大さじ3" becomes "醤油".
func MaterialName(line string) string {
	name := line
	if i := strings.IndexAny(line, " 　"); i >= 0 {
		name = line[:i]
	}
	return markerStripper.Replace(strings.TrimSpace(name))
}

// Match computes the matched and missing sets for a recipe. An on-hand
// ingredient matches when it is a substring of an extracted material name,
// so "卵" matches a "卵 3個" line and compound forms like "うずら卵".
func Match(onHand []string, r recipe.Recipe) Result {
	names := make([]string, 0, len(r.Materials))
	for _, line := range r.Materials {
		if name := MaterialName(line); name != "" {
			names = append(names, name)
		}
	}

	covered := make([]bool, len(names))
	matched := make([]string, 0, len(onHand))
	for _, ing := range onHand {
		ing = strings.TrimSpace(ing)
		if ing == "" {
			continue
		}
		hit := false
		for i, name := range names {
			if strings.Contains(name, ing) {
				covered[i] = true
				hit = true
			}
		}
		if hit {
			matched = append(matched, ing)
		}
	}

	missing := make([]string, 0, len(names))
	for i, name := range names {
		if !covered[i] {
			missing = append(missing, name)
		}
	}

	ratio := 0.0
	if len(names) > 0 {
		ratio = float64(len(matched)) / float64(len(names))
		if ratio > 1 {
			ratio = 1
		}
	}

	return Result{
		Matched:        matched,
		Missing:        missing,
		Ratio:          ratio,
		FullyCoverable: len(missing) == 0,
	}
}

// Rank orders candidates by descending match ratio, dropping recipes with
// no matched ingredient. Ties keep the input order.
func Rank(onHand []string, recipes []recipe.Recipe) []recipe.Recipe {
	type scored struct {
		recipe recipe.Recipe
		ratio  float64
	}
	var found []scored
	for _, r := range recipes {
		res := Match(onHand, r)
		if len(res.Matched) > 0 {
			found = append(found, scored{recipe: r, ratio: res.Ratio})
		}
	}
	sort.SliceStable(found, func(a, b int) bool {
		return found[a].ratio > found[b].ratio
	})

	out := make([]recipe.Recipe, len(found))
	for i, s := range found {
		out[i] = s.recipe
	}
	return out
}
