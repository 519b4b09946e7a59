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

const myntraHost = "myntra2.p.rapidapi.com"

// MyntraSource searches Myntra through its RapidAPI wrapper.
type MyntraSource struct {
	apiKey        string
	allowFallback bool
	httpClient    *http.Client
}

func NewMyntraSource(cfg *config.Config) *MyntraSource {
	return &MyntraSource{
		apiKey:        cfg.RapidAPIKey,
		allowFallback: cfg.Search.AllowFallback,
		httpClient:    &http.Client{Timeout: rapidAPITimeout},
	}
}

func (s *MyntraSource) Store() string   { return "myntra" }
func (s *MyntraSource) Website() string { return "Myntra" }

// myntraProduct is the Myntra-native record shape.
type myntraProduct struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Price       struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	SearchImage string `json:"searchImage"`
	ProductURL  string `json:"productUrl"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	InStock     bool   `json:"inStock"`
	Rating      float64 `json:"rating"`
	RatingCount int    `json:"ratingCount"`
}

func (s *MyntraSource) Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error) {
	result, err := s.search(ctx, keyword, maxResults)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("myntra search failed, using fallback: %v", err)
		}
		if !s.allowFallback {
			return nil, err
		}
		return truncate(&model.SearchResult{
			Products:    myntraFallbackCatalog(),
			SearchQuery: keyword,
			Website:     s.Website(),
		}, maxResults), nil
	}
	return result, nil
}

func (s *MyntraSource) search(ctx context.Context, keyword string, maxResults int) (*model.SearchResult, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("page", "1")
	params.Set("itemsPerPage", strconv.Itoa(maxResults))

	var out struct {
		Products []myntraProduct `json:"products"`
	}
	if err := rapidAPIGet(ctx, s.httpClient, s.apiKey, myntraHost, "/v2/search", params, &out); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(out.Products))
	for _, p := range out.Products {
		if p.ProductName == "" {
			continue
		}
		availability := model.InStock
		if !p.InStock {
			availability = model.OutOfStock
		}
		products = append(products, model.Product{
			ID:           p.ID,
			Name:         p.ProductName,
			Price:        fmt.Sprintf("₹%.0f", p.Price.Amount),
			Currency:     p.Price.Currency,
			URL:          "https://www.myntra.com/" + p.ProductURL,
			ImageURL:     p.SearchImage,
			Brand:        p.Brand,
			Category:     p.Category,
			Availability: availability,
			Rating:       p.Rating,
			ReviewsCount: p.RatingCount,
		})
	}

	return truncate(&model.SearchResult{
		Products:    products,
		SearchQuery: keyword,
		Website:     s.Website(),
	}, maxResults), nil
}
