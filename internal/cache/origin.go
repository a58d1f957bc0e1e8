package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPOrigin fetches cache keys as paths under a base URL, typically the
// static host serving the PWA shell.
type HTTPOrigin struct {
	httpClient *http.Client
	BaseURL    string
}

// NewHTTPOrigin builds an origin rooted at baseURL.
func NewHTTPOrigin(baseURL string) *HTTPOrigin {
	return &HTTPOrigin{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Fetch performs a single GET of baseURL+key. Only 200 responses are
// cacheable; other statuses are returned to the caller uncached. A transport
// failure is the only error case, matching the offline-fallback contract.
func (o *HTTPOrigin) Fetch(ctx context.Context, key string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.BaseURL+key, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building origin request for %s: %w", key, err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("origin fetch %s: %w", key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading origin body for %s: %w", key, err)
	}

	return body, resp.StatusCode == http.StatusOK, nil
}
