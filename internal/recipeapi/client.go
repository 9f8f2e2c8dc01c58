package recipeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/webex92-team1/foodmatch-server/internal/category"
	"github.com/webex92-team1/foodmatch-server/internal/match"
	"github.com/webex92-team1/foodmatch-server/internal/recipe"
)

const defaultBaseURL = "https://app.rakuten.co.jp/services/api"

const (
	categoryRankingPath = "/Recipe/CategoryRanking/20170426"
	keywordSearchPath   = "/Recipe/KeywordSearch/20170426"
)

const maxFetchTries = 3

// ErrNoCredential reports that no Rakuten application ID is configured.
// Searches still answer with sample data, but the condition is a deployment
// mistake and is logged as such.
var ErrNoCredential = errors.New("recipeapi: rakuten application ID not configured")

// UpstreamError is a failed exchange with the recipe API: a transport
// failure, a non-2xx status, or an error payload inside a 200 response.
type UpstreamError struct {
	Status      int
	Code        string
	Description string
	Err         error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("recipeapi: upstream request failed: %v", e.Err)
	case e.Code != "":
		return fmt.Sprintf("recipeapi: upstream error %s: %s", e.Code, e.Description)
	default:
		return fmt.Sprintf("recipeapi: upstream status %d", e.Status)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client queries the Rakuten recipe API, degrading to the bundled sample
// data when the API is unavailable or unconfigured. Browsing never hard
// fails; only cooperative cancellation propagates to the caller.
type Client struct {
	// AppID is the Rakuten application ID. Empty is tolerated but logged.
	AppID string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// HTTPClient overrides the HTTP client used for API calls.
	HTTPClient *http.Client

	categories *category.Index
	details    *detailCache
}

func NewClient(appID string, categories *category.Index) *Client {
	return &Client{
		AppID:      appID,
		categories: categories,
		details:    newDetailCache(detailCacheSize),
	}
}

// SearchByCategory returns the upstream ranking for a category. An empty
// category ID is a legitimate empty result, not a fallback. Configuration
// and upstream failures are logged and answered with sample data.
func (c *Client) SearchByCategory(ctx context.Context, categoryID string) ([]recipe.Recipe, error) {
	if strings.TrimSpace(categoryID) == "" {
		return []recipe.Recipe{}, nil
	}
	if strings.TrimSpace(c.AppID) == "" {
		slog.ErrorContext(ctx, "recipeapi: serving sample data", "error", ErrNoCredential)
		return recipe.Samples(), nil
	}

	raws, err := c.fetch(ctx, categoryRankingPath, url.Values{"categoryId": []string{categoryID}})
	if err != nil {
		return c.fallback(ctx, err)
	}
	return c.toRecipes(ctx, raws), nil
}

// SearchByIngredients matches recipes against free-text ingredient
// keywords. The first ingredient is resolved against the category table; a
// hit delegates to the upstream category ranking, a miss ranks the sample
// corpus locally, which needs no credential and is deterministic.
func (c *Client) SearchByIngredients(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	keywords := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			keywords = append(keywords, ing)
		}
	}
	if len(keywords) == 0 {
		return []recipe.Recipe{}, nil
	}

	rows := c.categories.Load(ctx)
	if hits := category.Search(keywords[0], rows, 1); len(hits) > 0 {
		return c.SearchByCategory(ctx, hits[0].ID)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return match.Rank(keywords, recipe.Samples()), nil
}

// Detail returns the recipe for id from the detail cache, then from the
// sample data, and nil when neither has it. The upstream API has no
// recipe-by-id endpoint.
func (c *Client) Detail(ctx context.Context, id string) (*recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	if r, ok := c.details.get(id); ok {
		return &r, nil
	}
	for _, r := range recipe.Samples() {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

// CacheForDetail remembers a recipe surfaced in search results so a later
// Detail call can serve it without an upstream endpoint.
func (c *Client) CacheForDetail(r recipe.Recipe) {
	c.details.put(r)
}

func (c *Client) fallback(ctx context.Context, err error) ([]recipe.Recipe, error) {
	// Cancellation unwinds without substituting data.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	slog.ErrorContext(ctx, "recipeapi: recipe search failed, serving sample data", "error", err)
	return recipe.Samples(), nil
}

func (c *Client) toRecipes(ctx context.Context, raws []recipe.Rakuten) []recipe.Recipe {
	rows := c.categories.Load(ctx)
	out := make([]recipe.Recipe, len(raws))
	for i, raw := range raws {
		out[i] = recipe.FromRakuten(raw, rows)
	}
	return out
}

type apiResponse struct {
	Result           []recipe.Rakuten `json:"result"`
	ErrorCode        string           `json:"error"`
	ErrorDescription string           `json:"error_description"`
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]recipe.Rakuten, error) {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	params.Set("format", "json")
	params.Set("applicationId", c.AppID)
	reqURL := base + path + "?" + params.Encode()

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	// Only transport failures are retried; HTTP and payload errors are
	// final and trigger the sample fallback immediately.
	return backoff.Retry(ctx, func() ([]recipe.Rakuten, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("recipeapi: creating request: %w", err))
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, &UpstreamError{Err: err}
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, &UpstreamError{Err: err}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, backoff.Permanent(&UpstreamError{Status: resp.StatusCode})
		}

		var parsed apiResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, backoff.Permanent(&UpstreamError{Err: fmt.Errorf("decoding response: %w", err)})
		}
		if parsed.ErrorCode != "" {
			return nil, backoff.Permanent(&UpstreamError{Code: parsed.ErrorCode, Description: parsed.ErrorDescription})
		}
		return parsed.Result, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxFetchTries))
}
