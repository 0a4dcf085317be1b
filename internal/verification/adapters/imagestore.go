package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"idverify/pkg/platform/sentinel"
)

// HTTPImageStore fetches stored images from the object-store gateway.
type HTTPImageStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPImageStore creates an image store client for the given base URL.
// A nil http.Client falls back to http.DefaultClient.
func NewHTTPImageStore(baseURL string, client *http.Client) *HTTPImageStore {
	return &HTTPImageStore{baseURL: baseURL, client: defaultClient(client)}
}

// Fetch returns the raw image bytes for a key. Keys may contain slashes, so
// the key travels as a query parameter rather than a path segment.
func (s *HTTPImageStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	endpoint := s.baseURL + "/v1/images?key=" + url.QueryEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w: %w", key, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("image %s: %w", key, sentinel.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image store returned status %d for %s: %w", resp.StatusCode, key, sentinel.ErrUnavailable)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", key, err)
	}
	return data, nil
}
