package oneapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lotr-api/pkg/apperr"
	"lotr-api/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 10 * time.Second

	// The One API allows 100 requests per 10 minutes per key
	outboundRate  = rate.Limit(100.0 / 600.0)
	outboundBurst = 10
)

// Client proxies The One API. Every call is a single round trip, no
// retries, no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

func NewClient(config utils.OneAPIConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		limiter: rate.NewLimiter(outboundRate, outboundBurst),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log.With(zap.String("client", "oneapi")),
	}
}

// fetch performs one GET against the remote API and decodes the list
// wrapper. Any non-success status maps to an upstream error carrying
// the status and endpoint.
func fetch[T any](ctx context.Context, c *Client, endpoint string) (*Response[T], error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperr.Upstream("Failed to fetch data from The One API",
			map[string]any{"endpoint": endpoint}, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch data from The One API",
			map[string]any{"endpoint": endpoint}, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("One API request failed",
			zap.Error(err),
			zap.String("endpoint", endpoint),
		)
		return nil, apperr.Upstream("Failed to fetch data from The One API",
			map[string]any{"endpoint": endpoint}, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("One API returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("endpoint", endpoint),
		)
		return nil, apperr.Upstream(
			fmt.Sprintf("The One API request failed: %s", resp.Status),
			map[string]any{"status": resp.StatusCode, "endpoint": endpoint},
			nil,
		)
	}

	var data Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, apperr.Upstream("Failed to fetch data from The One API",
			map[string]any{"endpoint": endpoint}, err)
	}

	return &data, nil
}

func (c *Client) GetMovies(ctx context.Context, page, limit int) (*Response[Movie], error) {
	offset := (page - 1) * limit
	return fetch[Movie](ctx, c, fmt.Sprintf("/movie?limit=%d&offset=%d", limit, offset))
}

// GetMovieByID treats an empty result set as not found; the remote list
// endpoint returns zero docs for unknown ids.
func (c *Client) GetMovieByID(ctx context.Context, id string) (*Movie, error) {
	response, err := fetch[Movie](ctx, c, "/movie/"+id)
	if err != nil {
		return nil, err
	}
	if len(response.Docs) == 0 {
		return nil, apperr.Upstream("Movie not found in The One API",
			map[string]any{"movieId": id}, nil)
	}
	return &response.Docs[0], nil
}

func (c *Client) GetCharacters(ctx context.Context, page, limit int) (*Response[Character], error) {
	offset := (page - 1) * limit
	return fetch[Character](ctx, c, fmt.Sprintf("/character?limit=%d&offset=%d", limit, offset))
}

func (c *Client) GetCharacterByID(ctx context.Context, id string) (*Character, error) {
	response, err := fetch[Character](ctx, c, "/character/"+id)
	if err != nil {
		return nil, err
	}
	if len(response.Docs) == 0 {
		return nil, apperr.Upstream("Character not found in The One API",
			map[string]any{"characterId": id}, nil)
	}
	return &response.Docs[0], nil
}
