package category

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// FileSource reads the category table from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("category: reading table file: %w", err)
	}
	return string(data), nil
}

// HTTPSource fetches the category table from a static URL.
type HTTPSource struct {
	URL string

	// HTTPClient overrides the HTTP client used for the fetch.
	HTTPClient *http.Client
}

func (s HTTPSource) Load(ctx context.Context) (string, error) {
	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("category: creating table request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("category: fetching table: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("category: fetching table: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("category: reading table response: %w", err)
	}
	return string(body), nil
}
