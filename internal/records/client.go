// Package records talks to a property-record provider. It returns whatever
// the provider knows about an address; missing fields simply stay nil and
// the rest of the pipeline degrades around them.
package records

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/domain"
)

const defaultUserAgent = "homefit (github.com/tmacher/homefit)"

// Client is an HTTP client for a property-record API.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	apiKey     string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates a records client. baseURL must point at the provider root.
func New(ctx context.Context, logger *zap.Logger, baseURL, apiKey string) *Client {
	return &Client{
		ctx:    ctx,
		apiKey: apiKey,
		APIURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: defaultUserAgent,
	}
}

// Lookup fetches the authoritative snapshot and market context for an
// address.
func (c *Client) Lookup(address string) (*domain.PropertySnapshot, *domain.MarketContext, error) {
	result, err := c.getProperty(address)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Debug("got property record",
		zap.String("address", address),
		zap.Int("comparables", len(result.Comparables)),
	)

	return result.toSnapshot(), result.toMarketContext(), nil
}
