package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/turkosaurus/guia/internal/types"
)

const maxBodySize = 4 << 20

// HTTPClient fetches attractions from a JSON endpoint.
type HTTPClient struct {
	url  string
	http *retryablehttp.Client
}

// NewHTTPClient creates a client for url. retries is the number of transport
// retries per fetch; zero means a failed request fails the fetch.
func NewHTTPClient(url string, retries int, timeout time.Duration) *HTTPClient {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = retries
	rc.HTTPClient.Timeout = timeout
	rc.Logger = slog.Default()
	// return the last response instead of a generic "giving up" error
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &HTTPClient{url: url, http: rc}
}

// FetchAttractions issues one GET and decodes either a bare JSON array or an
// object with an "attractions" array. Source order is preserved.
func (c *HTTPClient) FetchAttractions(ctx context.Context) ([]types.Attraction, error) {
	reqID := uuid.NewString()
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrNetwork, c.url, err)
	}
	defer resp.Body.Close()

	slog.Debug("catalog response",
		"url", c.url,
		"request_id", reqID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: get %s: status %d: %s", ErrNetwork, c.url, resp.StatusCode, bytes.TrimSpace(body))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrNetwork, err)
	}
	return decodeJSON(data)
}

type attractionsEnvelope struct {
	Attractions []types.Attraction `json:"attractions"`
}

func decodeJSON(data []byte) ([]types.Attraction, error) {
	data = bytes.TrimSpace(data)
	var list []types.Attraction
	if len(data) > 0 && data[0] == '{' {
		var env attractionsEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, dataError(fmt.Errorf("parse response: %w", err))
		}
		list = env.Attractions
	} else if err := json.Unmarshal(data, &list); err != nil {
		return nil, dataError(fmt.Errorf("parse response: %w", err))
	}
	if err := types.ValidateAttractions(list); err != nil {
		return nil, dataError(err)
	}
	if list == nil {
		list = []types.Attraction{}
	}
	return list, nil
}
