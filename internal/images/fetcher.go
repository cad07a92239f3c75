package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
	"golang.org/x/time/rate"
)

// profile images larger than this are rejected
const maxImageBytes = 5 << 20

// a fetched remote image
type Image struct {
	Data        []byte
	ContentType string
}

// Fetcher downloads profile images from provider-supplied URLs. The URL
// comes from an external party, so requests go through an SSRF-hardened
// client that blocks private, loopback and metadata address ranges.
type Fetcher struct {
	client *http.Client

	// outbound fetches are rate limited (5 requests/second, burst of 10)
	limiter *rate.Limiter
}

// creates a new image fetcher with the given per-request timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return &Fetcher{
		client:  safeurl.Client(config).Client,
		limiter: rate.NewLimiter(5, 10),
	}
}

// downloads the image at rawURL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d byte limit", maxImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return &Image{
		Data:        data,
		ContentType: contentType,
	}, nil
}
