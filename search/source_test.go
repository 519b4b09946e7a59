package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"styler/model"
)

// stubSource is a fixed-catalog Source for registry and aggregator tests.
type stubSource struct {
	store    string
	website  string
	products []model.Product
	err      error
}

func (s *stubSource) Store() string   { return s.store }
func (s *stubSource) Website() string { return s.website }

func (s *stubSource) Search(_ context.Context, keyword, _ string, maxResults int) (*model.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return truncate(&model.SearchResult{
		Products:    append([]model.Product(nil), s.products...),
		SearchQuery: keyword,
		Website:     s.website,
	}, maxResults), nil
}

func TestRegistryLookup(t *testing.T) {
	hm := &stubSource{store: "hm", website: "H&M"}
	zara := &stubSource{store: "zara", website: "Zara"}
	r := NewRegistry(zara, hm)

	got, err := r.Get("hm")
	if err != nil {
		t.Fatalf("Get(hm) error = %v", err)
	}
	if got != Source(hm) {
		t.Error("Get(hm) returned the wrong source")
	}

	if _, err := r.Get("amazon"); err == nil {
		t.Error("Get(amazon) should fail for unregistered store")
	}

	if got := r.Stores(); !reflect.DeepEqual(got, []string{"hm", "zara"}) {
		t.Errorf("Stores() = %v", got)
	}

	all := r.All()
	if len(all) != 2 || all[0].Store() != "zara" || all[1].Store() != "hm" {
		t.Errorf("All() should keep registration order, got %v", all)
	}
}

func TestRegistryIgnoresDuplicateStores(t *testing.T) {
	first := &stubSource{store: "hm", website: "first"}
	second := &stubSource{store: "hm", website: "second"}
	r := NewRegistry(first, second)

	got, _ := r.Get("hm")
	if got.Website() != "first" {
		t.Errorf("duplicate registration replaced the original: %q", got.Website())
	}
	if len(r.All()) != 1 {
		t.Errorf("All() length = %d, want 1", len(r.All()))
	}
}

func TestRelevanceScorerDeterministic(t *testing.T) {
	p := model.Product{
		Name:        "Floral Summer Dress",
		Description: "Lightweight dress for warm days",
		Category:    "Dresses",
		Rating:      4.2,
	}
	s := RelevanceScorer{}

	first := s.Score(p, "summer dress")
	for i := 0; i < 10; i++ {
		if got := s.Score(p, "summer dress"); got != first {
			t.Fatalf("score changed between calls: %v != %v", got, first)
		}
	}
}

func TestRelevanceScorerPrefersMatchingName(t *testing.T) {
	s := RelevanceScorer{}
	match := model.Product{Name: "Denim Jacket", Description: "Classic denim jacket"}
	miss := model.Product{Name: "Silk Scarf", Description: "Printed silk scarf"}

	if s.Score(match, "denim jacket") <= s.Score(miss, "denim jacket") {
		t.Error("matching product should outscore non-matching product")
	}
}

func TestRankProductsStableForEqualScores(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Plain Tee"},
		{ID: "2", Name: "Plain Tee"},
		{ID: "3", Name: "Plain Tee"},
	}
	rankProducts(products, "zzz", RelevanceScorer{})

	for i, want := range []string{"1", "2", "3"} {
		if products[i].ID != want {
			t.Fatalf("equal scores reordered: %v", products)
		}
	}
}

func TestAggregatorMergesAndIsolatesFailures(t *testing.T) {
	healthy := &stubSource{store: "hm", website: "H&M", products: []model.Product{
		{ID: "h1", Name: "Denim Jacket", Rating: 4.5},
		{ID: "h2", Name: "Wool Coat", Rating: 4.0},
	}}
	broken := &stubSource{store: "zara", website: "Zara", err: errors.New("backend down")}

	agg := NewAggregator(NewRegistry(healthy, broken), RelevanceScorer{}, nil)

	got := agg.SearchAll(context.Background(), "denim jacket", 10)
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2 from the healthy source", len(got))
	}
	if got[0].Name != "Denim Jacket" {
		t.Errorf("top result = %q, want the best match first", got[0].Name)
	}
}

func TestAggregatorCapsResults(t *testing.T) {
	src := &stubSource{store: "hm", website: "H&M", products: []model.Product{
		{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"},
	}}
	agg := NewAggregator(NewRegistry(src), RelevanceScorer{}, nil)

	if got := agg.SearchAll(context.Background(), "tops", 2); len(got) != 2 {
		t.Errorf("got %d products, want 2", len(got))
	}
}

func TestAggregatorSearchNeverErrors(t *testing.T) {
	broken := &stubSource{store: "hm", website: "H&M", err: errors.New("down")}
	agg := NewAggregator(NewRegistry(broken), RelevanceScorer{}, nil)

	result, err := agg.Search(context.Background(), "anything", "", 5)
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}
	if result.Products == nil {
		t.Error("Products is nil, want empty slice")
	}
	if result.TotalResults != 0 {
		t.Errorf("TotalResults = %d, want 0", result.TotalResults)
	}
}
