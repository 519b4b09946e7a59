package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"styler/config"
	"styler/model"
)

const browserUseBaseURL = "https://api.browser-use.com/api/v1"

// scrapeTimeout bounds one browser-automation call. Scraping is slow by
// nature, but a conversation turn must not hang on it.
const scrapeTimeout = 15 * time.Second

// browserUseSource scrapes a retail site through the Browser-Use API.
// H&M and Zara are both variants of this source with different website
// identifiers, category vocabularies, and fallback catalogs.
type browserUseSource struct {
	store           string
	website         string // request identifier, e.g. "hm.com"
	label           string // human-readable, e.g. "H&M India"
	defaultCategory string

	baseURL       string
	apiKey        string
	country       string
	language      string
	allowFallback bool
	fallback      []model.Product

	httpClient *http.Client
}

// scrapeRequest is the Browser-Use native request payload.
type scrapeRequest struct {
	Website    string `json:"website"`
	Action     string `json:"action"`
	Parameters struct {
		Query      string `json:"query"`
		Category   string `json:"category,omitempty"`
		MaxResults int    `json:"max_results,omitempty"`
		ProductURL string `json:"product_url,omitempty"`
		Country    string `json:"country"`
		Language   string `json:"language"`
	} `json:"parameters"`
}

// scrapeProduct is the Browser-Use native product record. Normalized to
// model.Product before leaving this package.
type scrapeProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        string  `json:"price"`
	Currency     string  `json:"currency"`
	URL          string  `json:"url"`
	ImageURL     string  `json:"image_url"`
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Availability string  `json:"availability"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
}

type scrapeResponse struct {
	Products []scrapeProduct `json:"products"`
	Product  *scrapeProduct  `json:"product"`
}

func (s *browserUseSource) Store() string   { return s.store }
func (s *browserUseSource) Website() string { return s.label }

// Search implements Source. Any failure, including a missing credential,
// resolves to the store's fallback catalog when fallback is enabled.
func (s *browserUseSource) Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error) {
	result, err := s.search(ctx, keyword, category, maxResults)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("%s search failed, using fallback: %v", s.store, err)
		}
		if !s.allowFallback {
			return nil, err
		}
		return s.fallbackResult(keyword, maxResults), nil
	}
	return result, nil
}

func (s *browserUseSource) search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("BROWSER_USE_API_KEY is not set")
	}
	if category == "" {
		category = s.defaultCategory
	}

	var reqBody scrapeRequest
	reqBody.Website = s.website
	reqBody.Action = "search_products"
	reqBody.Parameters.Query = keyword
	reqBody.Parameters.Category = category
	reqBody.Parameters.MaxResults = maxResults
	reqBody.Parameters.Country = s.country
	reqBody.Parameters.Language = s.language

	var out scrapeResponse
	if err := s.post(ctx, reqBody, &out); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(out.Products))
	for _, p := range out.Products {
		normalized, ok := normalizeScrapeProduct(p, s.label)
		if !ok {
			continue
		}
		products = append(products, normalized)
	}

	return truncate(&model.SearchResult{
		Products:    products,
		SearchQuery: keyword,
		Website:     s.label,
	}, maxResults), nil
}

// ProductDetails fetches a single product by URL. Returns nil (no error)
// when the lookup fails: the detail view is best-effort decoration.
func (s *browserUseSource) ProductDetails(ctx context.Context, productURL string) *model.Product {
	if s.apiKey == "" {
		return nil
	}

	var reqBody scrapeRequest
	reqBody.Website = "auto_detect"
	reqBody.Action = "get_product_details"
	reqBody.Parameters.ProductURL = productURL
	reqBody.Parameters.Country = s.country
	reqBody.Parameters.Language = s.language

	var out scrapeResponse
	if err := s.post(ctx, reqBody, &out); err != nil || out.Product == nil {
		if err != nil && config.DebugLog != nil {
			config.DebugLog.Printf("%s product details failed: %v", s.store, err)
		}
		return nil
	}

	normalized, ok := normalizeScrapeProduct(*out.Product, s.label)
	if !ok {
		return nil
	}
	return &normalized
}

func (s *browserUseSource) post(ctx context.Context, reqBody scrapeRequest, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/scrape", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("browser-use request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("browser-use returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode browser-use response: %w", err)
	}

	return nil
}

// normalizeScrapeProduct translates one native record into the common
// Product shape. Records without a usable name are dropped. Availability
// defaults to in_stock when the backend gives no signal; a record carrying
// an unrecognized availability value is dropped rather than guessed at.
func normalizeScrapeProduct(p scrapeProduct, brand string) (model.Product, bool) {
	if p.Name == "" {
		return model.Product{}, false
	}

	availability := model.Availability(p.Availability)
	if p.Availability == "" {
		availability = model.InStock
	} else if !availability.Valid() {
		return model.Product{}, false
	}

	if p.Brand == "" {
		p.Brand = brand
	}

	return model.Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Currency:     p.Currency,
		URL:          p.URL,
		ImageURL:     p.ImageURL,
		Description:  p.Description,
		Brand:        p.Brand,
		Category:     p.Category,
		Availability: availability,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
	}, true
}

func (s *browserUseSource) fallbackResult(keyword string, maxResults int) *model.SearchResult {
	products := append([]model.Product(nil), s.fallback...)
	return truncate(&model.SearchResult{
		Products:    products,
		SearchQuery: keyword,
		Website:     s.label,
	}, maxResults)
}
