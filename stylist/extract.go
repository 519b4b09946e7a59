package stylist

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"styler/config"
	"styler/model"
)

// fashionKeywords is the fixed vocabulary of fashion-item nouns scanned for
// in the model's reply. Matched case-insensitively as substrings.
var fashionKeywords = []string{
	"dress", "shirt", "pants", "jeans", "jacket", "skirt", "shoes", "heels", "sneakers",
}

// quotedRe matches single- or double-quoted substrings: candidate product
// names the model called out explicitly.
var quotedRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

// queryResultCap limits how many products a raw-query search may attach.
const queryResultCap = 4

// ExtractProducts implements model.Stylist. Given the model's reply and
// the user's original query, it decides which product searches to run and
// assembles the grid of shoppable matches:
//
//  1. quoted substrings in the reply, then fashion keyword mentions,
//     deduplicated, one concurrent search per candidate keeping only the
//     first product of each;
//  2. failing that, a single search on the raw query (if longer than two
//     characters), capped at four products;
//  3. failing that, an empty list.
//
// A nil return is reserved for the pipeline itself panicking; "attempted
// and found nothing" is always an empty non-nil slice.
func (s *Stylist) ExtractProducts(ctx context.Context, replyText, userQuery string) (products []model.Product) {
	defer func() {
		if r := recover(); r != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("product extraction panicked: %v", r)
			}
			products = nil
		}
	}()

	mentions := extractProductMentions(replyText)
	if len(mentions) > 0 {
		if found := s.searchMentions(ctx, mentions); len(found) > 0 {
			return found
		}
	}

	if len(userQuery) > 2 {
		result, err := s.searcher.Search(ctx, userQuery, "", queryResultCap)
		if err == nil && result != nil {
			if result.Products == nil {
				return []model.Product{}
			}
			return result.Products
		}
	}

	return []model.Product{}
}

// searchMentions runs one search per candidate concurrently and keeps the
// first product of each successful, non-empty result. Failures and empty
// results drop out silently.
func (s *Stylist) searchMentions(ctx context.Context, mentions []string) []model.Product {
	found := make([]*model.Product, len(mentions))
	var wg sync.WaitGroup
	for i, mention := range mentions {
		wg.Add(1)
		go func(i int, mention string) {
			defer wg.Done()
			result, err := s.searcher.Search(ctx, mention, "", 1)
			if err != nil || result == nil || len(result.Products) == 0 {
				return
			}
			found[i] = &result.Products[0]
		}(i, mention)
	}
	wg.Wait()

	var products []model.Product
	seen := make(map[string]bool)
	for _, p := range found {
		if p == nil {
			continue
		}
		key := p.ID + "|" + p.Name
		if seen[key] {
			continue
		}
		seen[key] = true
		products = append(products, *p)
	}
	return products
}

// extractProductMentions collects candidate search terms from the reply:
// quoted phrases first, then fashion keyword hits, deduplicated in order.
func extractProductMentions(text string) []string {
	var mentions []string
	seen := make(map[string]bool)

	for _, match := range quotedRe.FindAllStringSubmatch(text, -1) {
		candidate := match[1]
		if candidate == "" {
			candidate = match[2]
		}
		if candidate != "" && !seen[candidate] {
			seen[candidate] = true
			mentions = append(mentions, candidate)
		}
	}

	lower := strings.ToLower(text)
	for _, keyword := range fashionKeywords {
		if strings.Contains(lower, keyword) && !seen[keyword] {
			seen[keyword] = true
			mentions = append(mentions, keyword)
		}
	}

	return mentions
}
