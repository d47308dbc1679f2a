package analytics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/docker/gabeacon/pkg/httpclient"
)

// HelperTransport sends hits through go-retryablehttp configured to make a
// single attempt. Hits are never retried.
type HelperTransport struct {
	client *retryablehttp.Client
}

var _ Transport = (*HelperTransport)(nil)

func NewHelperTransport(logger *slog.Logger, client *http.Client) *HelperTransport {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = httpclient.NewHTTPClient(httpclient.WithTimeout(0))
	}

	retryableClient := retryablehttp.NewClient()
	retryableClient.HTTPClient = client
	retryableClient.RetryMax = 0
	retryableClient.Logger = logger
	retryableClient.CheckRetry = noRetry
	retryableClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &HelperTransport{client: retryableClient}
}

func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

func (h *HelperTransport) Get(ctx context.Context, rawURL string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := h.client.Do(req)
	if resp != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	return nil
}
