package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"styler/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Search.AllowFallback = true
	return cfg
}

func TestSearchMissingCredentialUsesFallback(t *testing.T) {
	cfg := testConfig()
	cfg.BrowserUseAPIKey = ""
	src := NewHnMSource(cfg)

	result, err := src.Search(context.Background(), "blazer", "", 10)
	if err != nil {
		t.Fatalf("Search() error = %v, want fallback", err)
	}

	wantNames := []string{"Slim Fit Blazer", "High-waisted Trousers", "Statement Chain Necklace"}
	if len(result.Products) != len(wantNames) {
		t.Fatalf("got %d products, want %d", len(result.Products), len(wantNames))
	}
	for i, want := range wantNames {
		if result.Products[i].Name != want {
			t.Errorf("products[%d].Name = %q, want %q", i, result.Products[i].Name, want)
		}
	}
	if result.TotalResults != len(result.Products) {
		t.Errorf("TotalResults = %d, want %d", result.TotalResults, len(result.Products))
	}
	for _, p := range result.Products {
		if !p.Availability.Valid() {
			t.Errorf("product %q has invalid availability %q", p.Name, p.Availability)
		}
	}
}

func TestSearchFallbackDisabledSurfacesError(t *testing.T) {
	cfg := testConfig()
	cfg.BrowserUseAPIKey = ""
	cfg.Search.AllowFallback = false
	src := NewZaraSource(cfg)

	result, err := src.Search(context.Background(), "blazer", "", 10)
	if err == nil {
		t.Fatal("Search() succeeded with fallback disabled and no credential")
	}
	if result != nil {
		t.Errorf("Search() result = %+v, want nil on error", result)
	}
}

func TestSearchNormalizesScrapedProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": [
			{"id": "1", "name": "Linen Shirt", "price": "1499", "availability": ""},
			{"id": "2", "name": "Knit Sweater", "price": "1999", "availability": "limited"},
			{"id": "3", "name": "Mystery Item", "price": "999", "availability": "maybe"},
			{"id": "4", "name": "", "price": "499"}
		]}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BrowserUseAPIKey = "test-key"
	src := NewHnMSource(cfg)
	src.baseURL = server.URL

	result, err := src.Search(context.Background(), "shirt", "", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	// Unknown availability and empty names are dropped, empty availability
	// defaults to in stock.
	if len(result.Products) != 2 {
		t.Fatalf("got %d products, want 2: %+v", len(result.Products), result.Products)
	}
	if result.Products[0].Availability != "in_stock" {
		t.Errorf("empty availability normalized to %q, want in_stock", result.Products[0].Availability)
	}
	if result.Products[1].Availability != "limited" {
		t.Errorf("availability = %q, want limited", result.Products[1].Availability)
	}
	if result.Products[0].Brand != "H&M India" {
		t.Errorf("missing brand defaulted to %q", result.Products[0].Brand)
	}
	if result.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2", result.TotalResults)
	}
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [
			{"id": "1", "name": "A"},
			{"id": "2", "name": "B"},
			{"id": "3", "name": "C"}
		]}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BrowserUseAPIKey = "test-key"
	src := NewHnMSource(cfg)
	src.baseURL = server.URL

	result, err := src.Search(context.Background(), "tops", "", 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Products) != 2 {
		t.Errorf("got %d products, want 2", len(result.Products))
	}
	if result.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2", result.TotalResults)
	}
}

func TestSearchServerErrorUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BrowserUseAPIKey = "test-key"
	src := NewZaraSource(cfg)
	src.baseURL = server.URL

	result, err := src.Search(context.Background(), "blazer", "", 10)
	if err != nil {
		t.Fatalf("Search() error = %v, want fallback", err)
	}
	if len(result.Products) == 0 {
		t.Fatal("fallback catalog is empty")
	}
	if result.Products[0].Name != "Structured Blazer" {
		t.Errorf("fallback product = %q", result.Products[0].Name)
	}
}

func TestProductDetailsBestEffort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"product": {"id": "9", "name": "Relaxed Chinos", "price": "1799", "availability": "in_stock"}}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.BrowserUseAPIKey = "test-key"
	src := NewHnMSource(cfg)
	src.baseURL = server.URL

	p := src.ProductDetails(context.Background(), "https://www2.hm.com/x")
	if p == nil {
		t.Fatal("ProductDetails() = nil, want product")
	}
	if p.Name != "Relaxed Chinos" {
		t.Errorf("Name = %q", p.Name)
	}

	// Missing credential: nil, no error surfaced anywhere.
	src.apiKey = ""
	if got := src.ProductDetails(context.Background(), "https://www2.hm.com/x"); got != nil {
		t.Errorf("ProductDetails() without key = %+v, want nil", got)
	}
}

func TestFallbackResultRespectsMaxResults(t *testing.T) {
	cfg := testConfig()
	cfg.BrowserUseAPIKey = ""
	src := NewHnMSource(cfg)

	result, err := src.Search(context.Background(), "blazer", "", 1)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Products) != 1 {
		t.Errorf("got %d products, want 1", len(result.Products))
	}
	if result.TotalResults != 1 {
		t.Errorf("TotalResults = %d, want 1", result.TotalResults)
	}
}
