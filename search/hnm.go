package search

import (
	"net/http"

	"styler/config"
)

// HnMSource searches hm.com through the Browser-Use scraping API.
type HnMSource struct {
	browserUseSource
}

func NewHnMSource(cfg *config.Config) *HnMSource {
	return &HnMSource{browserUseSource{
		store:           "hm",
		website:         "hm.com",
		label:           "H&M India",
		defaultCategory: "women",
		baseURL:         browserUseBaseURL,
		apiKey:          cfg.BrowserUseAPIKey,
		country:         cfg.Search.Country,
		language:        cfg.Search.Language,
		allowFallback:   cfg.Search.AllowFallback,
		fallback:        hnmFallbackCatalog(),
		httpClient:      &http.Client{Timeout: scrapeTimeout},
	}}
}
