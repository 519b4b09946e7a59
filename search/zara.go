package search

import (
	"net/http"

	"styler/config"
)

// ZaraSource searches zara.com through the Browser-Use scraping API.
// Note Zara's category vocabulary differs from H&M's ("woman", not "women").
type ZaraSource struct {
	browserUseSource
}

func NewZaraSource(cfg *config.Config) *ZaraSource {
	return &ZaraSource{browserUseSource{
		store:           "zara",
		website:         "zara.com",
		label:           "Zara India",
		defaultCategory: "woman",
		baseURL:         browserUseBaseURL,
		apiKey:          cfg.BrowserUseAPIKey,
		country:         cfg.Search.Country,
		language:        cfg.Search.Language,
		allowFallback:   cfg.Search.AllowFallback,
		fallback:        zaraFallbackCatalog(),
		httpClient:      &http.Client{Timeout: scrapeTimeout},
	}}
}
