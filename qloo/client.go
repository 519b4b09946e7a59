// Package qloo wraps the Qloo cultural recommendation API. It is the
// normalization boundary for style and trend suggestions: callers get typed
// responses and never see a transport or contract error. Any failure,
// including a missing API key, degrades to the canned fallback data so the
// conversational experience keeps working.
package qloo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"styler/config"
)

const defaultBaseURL = "https://hackathon.api.qloo.com"

// requestTimeout is the per-call ceiling. Qloo calls must never hang a
// conversation turn.
const requestTimeout = 12 * time.Second

// Recommendation is one culturally-informed style suggestion.
type Recommendation struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	CulturalRelevance float64  `json:"cultural_relevance"`
	StyleTags         []string `json:"style_tags"`
	Description       string   `json:"description"`
}

// Response is the normalized recommendation payload.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	CulturalContext string           `json:"cultural_context"`
	TrendingStyles  []string         `json:"trending_styles"`
}

// Client talks to the Qloo API. Construct once with New and share by
// reference; it is safe for concurrent use.
type Client struct {
	baseURL       string
	apiKey        string
	allowFallback bool
	httpClient    *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:       defaultBaseURL,
		apiKey:        cfg.QlooAPIKey,
		allowFallback: cfg.Search.AllowFallback,
		httpClient:    &http.Client{Timeout: requestTimeout},
	}
}

// recommendationRequest is the Qloo-native request shape. It never leaves
// this package.
type recommendationRequest struct {
	Input struct {
		Type            string `json:"type"`
		Keyword         string `json:"keyword"`
		Occasion        string `json:"occasion,omitempty"`
		CulturalContext string `json:"cultural_context,omitempty"`
	} `json:"input"`
	Options struct {
		Limit               int  `json:"limit"`
		IncludeCulturalData bool `json:"include_cultural_data"`
		IncludeTrending     bool `json:"include_trending"`
	} `json:"options"`
}

// Recommend fetches fashion recommendations for a keyword and optional
// occasion. On any failure it returns the fixed fallback response (or an
// error when fallback is disabled by configuration).
func (c *Client) Recommend(ctx context.Context, keyword, occasion, culturalContext string) (*Response, error) {
	resp, err := c.recommend(ctx, keyword, occasion, culturalContext)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("qloo recommend failed, using fallback: %v", err)
		}
		if !c.allowFallback {
			return nil, err
		}
		return FallbackResponse(), nil
	}
	return resp, nil
}

func (c *Client) recommend(ctx context.Context, keyword, occasion, culturalContext string) (*Response, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("QLOO_API_KEY is not set")
	}

	var reqBody recommendationRequest
	reqBody.Input.Type = "fashion"
	reqBody.Input.Keyword = keyword
	reqBody.Input.Occasion = occasion
	reqBody.Input.CulturalContext = culturalContext
	reqBody.Options.Limit = 10
	reqBody.Options.IncludeCulturalData = true
	reqBody.Options.IncludeTrending = true

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qloo request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("qloo returned status %d", httpResp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode qloo response: %w", err)
	}

	return &out, nil
}

// Trending fetches the current trending style names, optionally scoped to a
// category. Same fallback policy as Recommend.
func (c *Client) Trending(ctx context.Context, category string) ([]string, error) {
	styles, err := c.trending(ctx, category)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("qloo trending failed, using fallback: %v", err)
		}
		if !c.allowFallback {
			return nil, err
		}
		return FallbackTrendingStyles(), nil
	}
	return styles, nil
}

func (c *Client) trending(ctx context.Context, category string) ([]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("QLOO_API_KEY is not set")
	}

	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	query.Set("limit", strconv.Itoa(20))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/trending/fashion?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("qloo request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("qloo returned status %d", httpResp.StatusCode)
	}

	var out struct {
		TrendingStyles []string `json:"trending_styles"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode qloo response: %w", err)
	}

	return out.TrendingStyles, nil
}

// Ping checks backend reachability for the --doctor diagnostics. Unlike the
// public operations it reports real errors.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.trending(ctx, "")
	return err
}
