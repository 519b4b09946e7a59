package qloo

// Canned recommendation data substituted when the Qloo backend is
// unreachable or unconfigured. Deterministic so the degraded experience is
// stable across calls.

func FallbackResponse() *Response {
	return &Response{
		Recommendations: []Recommendation{
			{
				ID:                "1",
				Name:              "Contemporary Minimalist Look",
				Category:          "professional",
				CulturalRelevance: 0.85,
				StyleTags:         []string{"minimalist", "professional", "contemporary"},
				Description:       "Clean lines and neutral colors perfect for modern professional settings",
			},
			{
				ID:                "2",
				Name:              "Streetwear Fusion",
				Category:          "casual",
				CulturalRelevance: 0.92,
				StyleTags:         []string{"streetwear", "urban", "trendy"},
				Description:       "Mix of comfort and style popular in urban youth culture",
			},
		},
		CulturalContext: "These styles are trending in metropolitan areas and reflect current fashion movements",
		TrendingStyles:  []string{"oversized silhouettes", "neutral palettes", "sustainable fashion"},
	}
}

func FallbackTrendingStyles() []string {
	return []string{
		"Sustainable fashion",
		"Oversized blazers",
		"Cargo pants revival",
		"Minimalist jewelry",
		"Neutral color palettes",
		"Vintage denim",
		"Statement sleeves",
		"Chunky sneakers",
	}
}
