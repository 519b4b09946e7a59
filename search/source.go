// Package search wraps the external product-search backends behind one
// capability interface. Each store gets its own Source variant that builds
// the backend's native request, bounds it with a fixed timeout, and
// normalizes the native response into the common model.Product shape. No
// backend-specific shape survives past this package.
//
// Failure policy: a Source never propagates transport or contract errors
// when fallback is enabled. It returns the store's deterministic sample
// catalog instead, so the chat degrades to canned-but-coherent data rather
// than breaking. Callers cannot distinguish real from fallback data by the
// return value alone; that is a documented property, not a bug.
package search

import (
	"context"
	"fmt"
	"sort"

	"styler/model"
)

// Source is the per-store search capability. Implementations are safe for
// concurrent use.
type Source interface {
	// Store returns the registry identifier, e.g. "hm".
	Store() string

	// Website returns the human-readable store label, e.g. "H&M India".
	Website() string

	// Search runs one product search. maxResults truncates the returned
	// list; it never pads below what the backend naturally provides.
	Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error)
}

// Registry maps store identifiers to Source implementations. This replaces
// per-call store branching with an explicit variant set.
type Registry struct {
	sources map[string]Source
	order   []string
}

func NewRegistry(sources ...Source) *Registry {
	r := &Registry{sources: make(map[string]Source, len(sources))}
	for _, s := range sources {
		if _, dup := r.sources[s.Store()]; dup {
			continue
		}
		r.sources[s.Store()] = s
		r.order = append(r.order, s.Store())
	}
	return r
}

// Get looks up a source by store identifier.
func (r *Registry) Get(store string) (Source, error) {
	s, ok := r.sources[store]
	if !ok {
		return nil, fmt.Errorf("unknown store: %q", store)
	}
	return s, nil
}

// All returns the registered sources in registration order.
func (r *Registry) All() []Source {
	out := make([]Source, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sources[id])
	}
	return out
}

// Stores returns the registered store identifiers, sorted.
func (r *Registry) Stores() []string {
	out := append([]string(nil), r.order...)
	sort.Strings(out)
	return out
}

// truncate applies the maxResults cap to a result in place.
func truncate(result *model.SearchResult, maxResults int) *model.SearchResult {
	if maxResults > 0 && len(result.Products) > maxResults {
		result.Products = result.Products[:maxResults]
	}
	result.TotalResults = len(result.Products)
	return result
}
