package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pokedex-backend/config"
	"pokedex-backend/internal/errs"
)

// StatusError reports a non-2xx response from the upstream. It unwraps to
// errs.ErrUpstream.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return errs.ErrUpstream
}

// Client performs single GET round trips against the upstream list/detail
// endpoints. It never retries and keeps no state between calls.
type Client struct {
	baseURL string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

// NewClient creates a client for cfg.APIURL, routed through cfg.HTTPProxy when set.
func NewClient(cfg config.UpstreamConfig, sugar *zap.SugaredLogger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			sugar.Warnf("Invalid proxy URL %q: %v. Upstream requests will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		client:  &http.Client{Transport: transport},
		sugar:   sugar,
	}
}

// FetchList retrieves one page of the upstream list endpoint.
func (c *Client) FetchList(ctx context.Context, offset, limit int) (*ListResponse, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: upstream api url is not set", errs.ErrConfig)
	}
	if offset < 0 || limit < 1 {
		return nil, fmt.Errorf("%w: invalid page offset=%d limit=%d", errs.ErrBadRequest, offset, limit)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid upstream api url %q: %v", errs.ErrConfig, c.baseURL, err)
	}
	q := u.Query()
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var list ListResponse
	if err := c.getAndDecode(ctx, u.String(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FetchByID retrieves a single Pokémon from the upstream detail endpoint.
// An upstream 404 is reported as errs.ErrNotFound.
func (c *Client) FetchByID(ctx context.Context, id int) (*Pokemon, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: upstream api url is not set", errs.ErrConfig)
	}
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid pokemon id %d", errs.ErrBadRequest, id)
	}

	var pokemon Pokemon
	err := c.getAndDecode(ctx, fmt.Sprintf("%s/%d", c.baseURL, id), &pokemon)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: pokemon %d", errs.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &pokemon, nil
}

func (c *Client) getAndDecode(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", errs.ErrConfig, err)
	}
	req.Header.Set("Accept", "application/json")

	c.sugar.Debugf("Fetching %s", endpoint)
	resp, err := c.client.Do(req)
	if err != nil {
		c.sugar.Warnf("Upstream request %s failed: %v", endpoint, err)
		return fmt.Errorf("%w: GET %s: %v", errs.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.sugar.Warnf("Upstream %s returned status %d", endpoint, resp.StatusCode)
		return &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", errs.ErrUpstream, err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", errs.ErrMalformedUpstream, endpoint, err)
	}
	return nil
}
