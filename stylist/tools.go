package stylist

import (
	"context"
	"encoding/json"
	"sync"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"styler/config"
	"styler/model"
	"styler/qloo"
)

// Tool names the model may call.
const (
	toolQlooSuggestion = "getQlooSuggestion"
	toolSearchHnM      = "searchHnM"
)

// Fixed per-tool failure results. A tool that cannot fetch real data
// reports so in prose; the turn proceeds with whatever the other tools
// produced.
const (
	qlooUnavailableText   = "Unable to fetch cultural fashion recommendations at the moment."
	searchUnavailableText = "Unable to fetch H&M products at the moment."
)

// fashionTools declares the two callable tools offered on every first-round
// completion request.
func fashionTools() []mcptypes.Tool {
	return []mcptypes.Tool{
		mcptypes.NewTool(toolQlooSuggestion,
			mcptypes.WithDescription("Get culturally relevant fashion recommendations using Qloo API"),
			mcptypes.WithString("keyword",
				mcptypes.Required(),
				mcptypes.Description(`Fashion keyword or style to search for (e.g., "summer dress", "streetwear", "formal wear")`),
			),
			mcptypes.WithString("occasion",
				mcptypes.Description(`The occasion or event type (e.g., "party", "work", "casual", "date")`),
			),
		),
		mcptypes.NewTool(toolSearchHnM,
			mcptypes.WithDescription("Search for real fashion products on H&M using Browser-Use API"),
			mcptypes.WithString("keyword",
				mcptypes.Required(),
				mcptypes.Description(`Product keyword to search for on H&M (e.g., "black dress", "leather jacket", "jeans")`),
			),
			mcptypes.WithString("category",
				mcptypes.Description(`Product category (e.g., "women", "men", "kids")`),
			),
		),
	}
}

// CulturalRecommender is the slice of the qloo client the toolbox needs.
type CulturalRecommender interface {
	Recommend(ctx context.Context, keyword, occasion, culturalContext string) (*qloo.Response, error)
}

// ProductSearcher is the slice of a search source the toolbox and the
// extraction step need.
type ProductSearcher interface {
	Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error)
}

// Toolbox resolves tool calls against the recommendation and search
// adapters. Results are JSON-stringified for the model; failures become
// fixed prose, never errors.
type Toolbox struct {
	recommender CulturalRecommender
	searcher    ProductSearcher
	maxResults  int
}

func NewToolbox(recommender CulturalRecommender, searcher ProductSearcher, maxResults int) *Toolbox {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Toolbox{
		recommender: recommender,
		searcher:    searcher,
		maxResults:  maxResults,
	}
}

// DispatchAll executes every tool call concurrently and returns results in
// call order. Tool calls within one turn have no ordering dependency, and
// one failing call never aborts its siblings.
func (t *Toolbox) DispatchAll(ctx context.Context, calls []model.ToolCall) []string {
	results := make([]string, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call model.ToolCall) {
			defer wg.Done()
			results[i] = t.Dispatch(ctx, call)
		}(i, call)
	}
	wg.Wait()
	return results
}

// Dispatch resolves a single tool call. Unknown tool names resolve to an
// empty result rather than an error surfaced to the model.
func (t *Toolbox) Dispatch(ctx context.Context, call model.ToolCall) string {
	switch call.Name {
	case toolQlooSuggestion:
		return t.qlooSuggestion(ctx, call)
	case toolSearchHnM:
		return t.searchHnM(ctx, call)
	default:
		if config.DebugLog != nil {
			config.DebugLog.Printf("model requested unknown tool %q", call.Name)
		}
		return ""
	}
}

func (t *Toolbox) qlooSuggestion(ctx context.Context, call model.ToolCall) string {
	resp, err := t.recommender.Recommend(ctx, stringArg(call, "keyword"), stringArg(call, "occasion"), "")
	if err != nil {
		return qlooUnavailableText
	}
	return marshalToolResult(resp, qlooUnavailableText)
}

func (t *Toolbox) searchHnM(ctx context.Context, call model.ToolCall) string {
	result, err := t.searcher.Search(ctx, stringArg(call, "keyword"), stringArg(call, "category"), t.maxResults)
	if err != nil {
		return searchUnavailableText
	}
	return marshalToolResult(result, searchUnavailableText)
}

func stringArg(call model.ToolCall, name string) string {
	if v, ok := call.Arguments[name].(string); ok {
		return v
	}
	return ""
}

func marshalToolResult(v any, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(data)
}
