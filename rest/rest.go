// Package rest provides core functions for
// network requests to Bittrex API endpoints
package rest

import (
	"context"
	"io"
	"time"

	"github.com/banky/go-bittrex/constants"
	"github.com/banky/go-bittrex/credentials"
	"github.com/banky/go-bittrex/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// CredentialResolver supplies the key and secret for signed requests
type CredentialResolver interface {
	Resolve() (credentials.Pair, error)
}

// ClientInterface defines the contract for REST API calls
type ClientInterface interface {
	Get(ctx context.Context, url string, requireSignature bool) (string, error)
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	resolver CredentialResolver
	timeout  mo.Option[time.Duration]
	clock    mo.Option[func() time.Time]
	logger   zerolog.Logger
}

// New creates a new client instance. Without options credentials come
// from credentials.Default(), no timeout is enforced and nothing is logged.
func New(opts ...Option) *Client {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver := cfg.resolver.OrElse(nil)
	if resolver == nil {
		resolver = credentials.Default()
	}

	return &Client{
		resolver: resolver,
		timeout:  cfg.timeout,
		clock:    cfg.clock,
		logger:   cfg.logger,
	}
}

// Get sends a GET request to url and returns the response body.
// When requireSignature is set the url is extended with the api key and a
// nonce, and the HMAC of the resulting url is sent in the apisign header.
// Credentials are only looked up for signed requests.
func (c *Client) Get(
	ctx context.Context,
	url string,
	requireSignature bool,
) (string, error) {
	target := url
	headers := map[string]string{}

	if requireSignature {
		pair, err := c.resolver.Resolve()
		if err != nil {
			return "", err
		}

		nonce := c.now().UnixMilli()

		target, err = SignedURL(url, pair.APIKey, nonce)
		if err != nil {
			return "", err
		}

		headers[constants.API_SIGN_HEADER] = Sign(pair.APISecret, target)
	} else if _, err := parseURL(url); err != nil {
		return "", err
	}

	return c.dispatch(ctx, url, target, headers)
}

func (c *Client) dispatch(
	ctx context.Context,
	url string,
	target string,
	headers map[string]string,
) (string, error) {
	r := resty.New()
	defer r.GetClient().CloseIdleConnections()

	// Apply timeout to context if specified
	if timeout, ok := c.timeout.Get(); ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	signed := len(headers) > 0
	c.logger.Debug().
		Str("method", resty.MethodGet).
		Str("url", url).
		Bool("signed", signed).
		Msg("dispatching request")

	resp, err := r.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetDoNotParseResponse(true).
		Get(target)

	if err != nil {
		return "", err
	}

	body := resp.RawBody()
	defer body.Close()

	c.logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Msg("received response")

	if !resp.IsSuccess() {
		// The body is diagnostic only, so a failed read leaves it empty
		data, _ := io.ReadAll(body)
		return "", &HTTPError{
			StatusCode: resp.StatusCode(),
			Reason:     utils.ReasonPhrase(resp.Status(), resp.StatusCode()),
			Body:       string(data),
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (c *Client) now() time.Time {
	if clock, ok := c.clock.Get(); ok {
		return clock()
	}
	return time.Now()
}
