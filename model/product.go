package model

// Availability is the normalized stock state. Every adapter must resolve
// a backend's stock signal to one of these three values; a product with no
// usable signal defaults to in stock rather than being invented as scarce.
type Availability string

const (
	InStock    Availability = "in_stock"
	OutOfStock Availability = "out_of_stock"
	Limited    Availability = "limited"
)

// Valid reports whether a is one of the three defined states.
func (a Availability) Valid() bool {
	switch a {
	case InStock, OutOfStock, Limited:
		return true
	}
	return false
}

// Product is the common shape all search backends normalize into. No
// backend-specific shape survives past the adapter boundary. Price stays a
// string: formatting belongs to the backend's locale, not to us.
type Product struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Price        string       `json:"price"`
	Currency     string       `json:"currency,omitempty"`
	URL          string       `json:"url"`
	ImageURL     string       `json:"image_url"`
	Description  string       `json:"description"`
	Brand        string       `json:"brand"`
	Category     string       `json:"category"`
	Availability Availability `json:"availability"`
	Rating       float64      `json:"rating,omitempty"`
	ReviewsCount int          `json:"reviews_count,omitempty"`

	// CulturalInsight is an optional annotation added by the aggregator,
	// never by a store adapter.
	CulturalInsight string `json:"cultural_insight,omitempty"`
}

// SearchResult is one search call's worth of products. Produced fresh per
// call; callers concatenate lists explicitly if they want merging.
type SearchResult struct {
	Products     []Product `json:"products"`
	TotalResults int       `json:"total_results"`
	SearchQuery  string    `json:"search_query"`
	Website      string    `json:"website"`
}
