package analytics

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/docker/gabeacon/pkg/httpclient"
)

// Transport issues a single GET request and ignores the response.
type Transport interface {
	Get(ctx context.Context, rawURL string) error
}

// HTTPTransport sends hits with a plain net/http request.
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport uses client, or a gabeacon client when client is nil. The
// default client has no timeout of its own; the tracker bounds each hit.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = httpclient.NewHTTPClient(httpclient.WithTimeout(0))
	}
	return &HTTPTransport{client: client}
}

func (h *HTTPTransport) Get(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
