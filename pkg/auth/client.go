package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wenhuei/recipevault/pkg/core"
)

// DefaultLoginURL is the remote login endpoint used when none is configured.
const DefaultLoginURL = "https://json-placeholder.mock.beeceptor.com/login"

// Client performs remote authentication. The endpoint is treated as an
// opaque boolean-producing collaborator: credentials either check out or
// they don't.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a login client for the given endpoint. A nil httpClient
// gets a default with a request timeout, so login fails rather than hangs.
func NewClient(url string, httpClient *http.Client, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultLoginURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{url: url, http: httpClient, logger: logger}
}

// Authenticate posts the credentials using HTTP Basic auth.
// Rejected credentials return (false, nil); network failures and unexpected
// statuses return a TransportError.
func (c *Client) Authenticate(ctx context.Context, username, password string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, nil)
	if err != nil {
		return false, &core.TransportError{Err: err}
	}
	req.SetBasicAuth(username, password)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &core.TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.Debug("credentials rejected", "status", resp.StatusCode)
		return false, nil
	default:
		return false, &core.TransportError{Err: fmt.Errorf("unexpected status %d from login endpoint", resp.StatusCode)}
	}
}
