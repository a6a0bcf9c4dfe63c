// Package fetcher wraps HTTP retrieval of source documents.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Some sites refuse requests without a browser-like agent.
const userAgent = "Mozilla/5.0 (compatible; docstats/1.0)"

const defaultTimeout = 15 * time.Second

// maxBodyBytes caps response reads so a misbehaving server cannot exhaust
// memory. 50MB comfortably covers large PDFs.
const maxBodyBytes = 50 * 1024 * 1024

type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher with a bounded timeout. Redirects are
// followed by the default client policy.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// NewFetcherWithClient allows injecting a client, mainly for tests.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Get retrieves url and returns the body bytes together with the response's
// declared Content-Type. Any non-2xx status is an error.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("failed to fetch, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
