package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"styler/config"
	"styler/model"
)

const ajioHost = "ajio-scraper-api.p.rapidapi.com"

// AjioSource searches Ajio through its RapidAPI scraper wrapper.
type AjioSource struct {
	apiKey        string
	allowFallback bool
	httpClient    *http.Client
}

func NewAjioSource(cfg *config.Config) *AjioSource {
	return &AjioSource{
		apiKey:        cfg.RapidAPIKey,
		allowFallback: cfg.Search.AllowFallback,
		httpClient:    &http.Client{Timeout: rapidAPITimeout},
	}
}

func (s *AjioSource) Store() string   { return "ajio" }
func (s *AjioSource) Website() string { return "Ajio" }

// ajioProduct is the Ajio-native record shape.
type ajioProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
	InStock  bool   `json:"inStock"`
}

func (s *AjioSource) Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error) {
	result, err := s.search(ctx, keyword, maxResults)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("ajio search failed, using fallback: %v", err)
		}
		if !s.allowFallback {
			return nil, err
		}
		return truncate(&model.SearchResult{
			Products:    ajioFallbackCatalog(),
			SearchQuery: keyword,
			Website:     s.Website(),
		}, maxResults), nil
	}
	return result, nil
}

func (s *AjioSource) search(ctx context.Context, keyword string, maxResults int) (*model.SearchResult, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("limit", strconv.Itoa(maxResults))

	var out struct {
		Products []ajioProduct `json:"products"`
	}
	if err := rapidAPIGet(ctx, s.httpClient, s.apiKey, ajioHost, "/search", params, &out); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(out.Products))
	for _, p := range out.Products {
		if p.Name == "" {
			continue
		}
		availability := model.InStock
		if !p.InStock {
			availability = model.OutOfStock
		}
		products = append(products, model.Product{
			ID:           p.ID,
			Name:         p.Name,
			Price:        fmt.Sprintf("₹%.0f", p.Price.Amount),
			Currency:     p.Price.Currency,
			URL:          p.URL,
			ImageURL:     p.ImageURL,
			Brand:        p.Brand,
			Category:     p.Category,
			Availability: availability,
		})
	}

	return truncate(&model.SearchResult{
		Products:    products,
		SearchQuery: keyword,
		Website:     s.Website(),
	}, maxResults), nil
}
