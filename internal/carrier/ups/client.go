package ups

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/guttosm/rate-service/internal/domain/model"
)

// maxResponseBytes bounds how much of a rating response is read.
const maxResponseBytes = 1 << 20

// Client posts rating payloads to the UPS endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient falls back to
// http.DefaultClient; call timeouts come from the caller's context.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	cfg = cfg.withDefaults()
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: cfg.Endpoint, httpClient: httpClient}
}

// Quote posts the payload and returns the parsed outcome.
func (c *Client) Quote(ctx context.Context, payload string) (model.CarrierQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(payload))
	if err != nil {
		return model.CarrierQuote{}, errors.Wrap(err, "build rating request")
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.CarrierQuote{}, errors.Wrap(err, "post rating request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return model.CarrierQuote{}, errors.Wrap(err, "read rating response")
	}
	if resp.StatusCode != http.StatusOK {
		return model.CarrierQuote{}, errors.Errorf("rating endpoint returned status %d", resp.StatusCode)
	}

	return ParseResponse(body)
}
