package delivery

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"coupon-issuance/internal/pkg/config"
	"coupon-issuance/internal/pkg/errs"
)

// HTTPClient posts events to the downstream analytics endpoint.
// A non-2xx response is a recoverable rejection (false, nil); only
// transport-level failures surface as errors.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPClient(cfg config.DeliveryConfig) *HTTPClient {
	return &HTTPClient{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *HTTPClient) Send(ctx context.Context, payload []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, errs.Wrap(err, "failed to build delivery request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errs.Wrap(err, "delivery request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
