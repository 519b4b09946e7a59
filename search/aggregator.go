package search

import (
	"context"
	"sync"

	"styler/config"
	"styler/model"
	"styler/qloo"
)

// Aggregator fans one query out across every registered store and merges
// the results into a single ranked list. Per-store failures are isolated:
// a store that errors (with fallback disabled) simply contributes nothing,
// it never aborts its siblings.
type Aggregator struct {
	registry *Registry
	scorer   Scorer
	qloo     *qloo.Client // optional; nil disables cultural annotation
}

func NewAggregator(registry *Registry, scorer Scorer, qlooClient *qloo.Client) *Aggregator {
	if scorer == nil {
		scorer = RelevanceScorer{}
	}
	return &Aggregator{
		registry: registry,
		scorer:   scorer,
		qloo:     qlooClient,
	}
}

// SearchAll searches every registered store concurrently and returns the
// merged, ranked product list, capped at maxResults.
func (a *Aggregator) SearchAll(ctx context.Context, query string, maxResults int) []model.Product {
	sources := a.registry.All()

	results := make([][]model.Product, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			result, err := src.Search(ctx, query, "", maxResults)
			if err != nil {
				if config.DebugLog != nil {
					config.DebugLog.Printf("aggregator: %s contributed nothing: %v", src.Store(), err)
				}
				return
			}
			results[i] = result.Products
		}(i, src)
	}
	wg.Wait()

	var merged []model.Product
	for _, products := range results {
		merged = append(merged, products...)
	}

	rankProducts(merged, query, a.scorer)
	a.annotate(ctx, merged, query)

	if maxResults > 0 && len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	return merged
}

// Search adapts SearchAll to the single-source search shape so the
// aggregator can stand in wherever one store adapter is expected. It never
// returns an error; an all-stores miss is an empty result.
func (a *Aggregator) Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error) {
	products := a.SearchAll(ctx, keyword, maxResults)
	if products == nil {
		products = []model.Product{}
	}
	return &model.SearchResult{
		Products:     products,
		TotalResults: len(products),
		SearchQuery:  keyword,
		Website:      "All stores",
	}, nil
}

// annotate decorates the ranked list with the cultural context Qloo
// reports for the query. Best-effort: a Qloo failure leaves products bare.
func (a *Aggregator) annotate(ctx context.Context, products []model.Product, query string) {
	if a.qloo == nil || len(products) == 0 {
		return
	}

	resp, err := a.qloo.Recommend(ctx, query, "", "")
	if err != nil || resp == nil || resp.CulturalContext == "" {
		return
	}

	for i := range products {
		products[i].CulturalInsight = resp.CulturalContext
	}
}
