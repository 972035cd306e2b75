package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"
)

// Client wraps the Kratos public API used by the identity gateway. Only the
// frontend surface is needed: native login/registration flows, session
// introspection, settings flows, and logout.
type Client struct {
	api       *kratosclient.APIClient
	publicURL string
	logger    *slog.Logger
}

// NewClient creates a new Kratos client against the public endpoint
func NewClient(publicURL string, logger *slog.Logger) (*Client, error) {
	if !isValidURL(publicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", publicURL)
	}

	cfg := kratosclient.NewConfiguration()
	cfg.Servers = []kratosclient.ServerConfiguration{
		{
			URL: publicURL,
		},
	}
	cfg.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}
	if cfg.DefaultHeader == nil {
		cfg.DefaultHeader = make(map[string]string)
	}
	cfg.DefaultHeader["Accept"] = "application/json"
	cfg.DefaultHeader["Content-Type"] = "application/json"

	logger.Info("Kratos client initialized", "public_url", publicURL)

	return &Client{
		api:       kratosclient.NewAPIClient(cfg),
		publicURL: publicURL,
		logger:    logger.With("component", "kratos_client"),
	}, nil
}

// API returns the underlying Kratos API client
func (c *Client) API() *kratosclient.APIClient {
	return c.api
}

// PublicURL returns the configured public endpoint
func (c *Client) PublicURL() string {
	return c.publicURL
}

// HealthCheck checks if Kratos is reachable
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, response, err := c.api.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos public API: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Kratos public API returned status %d", response.StatusCode)
	}
	return nil
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
