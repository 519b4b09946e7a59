package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// rapidAPITimeout bounds one RapidAPI retailer search call.
const rapidAPITimeout = 10 * time.Second

// rapidAPIGet issues one authenticated RapidAPI request and decodes the
// JSON response into out. The host doubles as the X-RapidAPI-Host header.
func rapidAPIGet(ctx context.Context, client *http.Client, apiKey, host, path string, params url.Values, out any) error {
	if apiKey == "" {
		return fmt.Errorf("RAPID_API_KEY is not set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+host+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", apiKey)
	req.Header.Set("X-RapidAPI-Host", host)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("rapidapi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rapidapi returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode rapidapi response: %w", err)
	}

	return nil
}
