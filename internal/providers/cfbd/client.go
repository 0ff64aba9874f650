package cfbd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/cfb-dashboard/internal/domain/raw"
	"github.com/preston-bernstein/cfb-dashboard/internal/providers"
)

// Config controls how the client reaches the CollegeFootballData API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches raw season data from the CollegeFootballData API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchGames retrieves FBS games for a season, optionally narrowed to one week.
func (c *Client) FetchGames(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(q.Year))
	params.Set("seasonType", resolveSeasonType(q.SeasonType))
	params.Set("classification", fbsClassification)
	if q.Week > 0 {
		params.Set("week", strconv.Itoa(q.Week))
	}
	return c.get(ctx, providers.EndpointGames, params)
}

// FetchTeams retrieves FBS team metadata for a season.
func (c *Client) FetchTeams(ctx context.Context, year int) ([]raw.Record, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	return c.get(ctx, providers.EndpointTeams, params)
}

// FetchSeasonStats retrieves cumulative per-team stat rows for the same season
// type the games fetch uses, so totals and game counts cover the same games.
func (c *Client) FetchSeasonStats(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(q.Year))
	params.Set("seasonType", resolveSeasonType(q.SeasonType))
	return c.get(ctx, providers.EndpointStats, params)
}

// FetchRankings retrieves weekly poll snapshots for a season.
func (c *Client) FetchRankings(ctx context.Context, q providers.Query) ([]raw.Record, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(q.Year))
	params.Set("seasonType", resolveSeasonType(q.SeasonType))
	if q.Week > 0 {
		params.Set("week", strconv.Itoa(q.Week))
	}
	return c.get(ctx, providers.EndpointRankings, params)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]raw.Record, error) {
	req, err := c.buildRequest(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", providerName, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s: read body", providerName, endpoint)
	}

	var items []any
	if err := sonic.Unmarshal(body, &items); err != nil {
		return nil, &providers.UpstreamError{
			Provider: providerName,
			Endpoint: endpoint,
			Message:  "decode response: " + err.Error(),
		}
	}
	return raw.Records(items), nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
