package search

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"styler/model"
)

// Scorer ranks products for a query. The real scoring model (cultural
// relevance signals from Qloo et al.) is an external collaborator; this
// interface is the seam where it plugs in. Implementations must be
// deterministic: rank order for identical inputs never changes.
type Scorer interface {
	Score(p model.Product, query string) float64
}

// RelevanceScorer is the default Scorer: fuzzy text relevance of the query
// against the product's name and description/category, blended with a
// popularity signal from ratings. Weights follow the aggregation design:
// 0.4 name match, 0.4 style match, 0.2 popularity.
type RelevanceScorer struct{}

func (RelevanceScorer) Score(p model.Product, query string) float64 {
	nameScore := fuzzyScore(query, p.Name)
	styleScore := fuzzyScore(query, p.Description+" "+p.Category)

	// Rating is 0-5; fold in review volume with a soft cap so a handful
	// of reviews doesn't outrank strong text relevance.
	popularity := p.Rating / 5.0
	if p.ReviewsCount > 0 {
		volume := float64(p.ReviewsCount) / 500.0
		if volume > 1 {
			volume = 1
		}
		popularity = (popularity + volume) / 2
	}

	return 0.4*nameScore + 0.4*styleScore + 0.2*popularity
}

// fuzzyScore maps a fuzzy match to [0, 1]. No match scores zero.
func fuzzyScore(query, target string) float64 {
	if query == "" || target == "" {
		return 0
	}
	matches := fuzzy.Find(query, []string{target})
	if len(matches) == 0 || matches[0].Score <= 0 {
		return 0
	}
	// fuzzy scores grow with match quality and length; squash into (0, 1].
	score := float64(matches[0].Score)
	return score / (score + 20.0)
}

// rankProducts sorts products by descending score, stably so equal scores
// keep source order (and therefore stay deterministic).
func rankProducts(products []model.Product, query string, scorer Scorer) {
	sort.SliceStable(products, func(i, j int) bool {
		return scorer.Score(products[i], query) > scorer.Score(products[j], query)
	})
}
