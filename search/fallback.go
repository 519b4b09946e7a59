package search

import "styler/model"

// Deterministic sample catalogs, one per store. These are what a Source
// returns when its backend fails or is unconfigured. Fixed contents keep
// the degraded experience stable and make the fallback path testable.

func hnmFallbackCatalog() []model.Product {
	return []model.Product{
		{
			ID:           "hm_001",
			Name:         "Slim Fit Blazer",
			Price:        "3299",
			Currency:     "INR",
			URL:          "https://www2.hm.com/en_in/productpage.0713986001.html",
			ImageURL:     "https://lp2.hm.com/hmgoepprod?set=source[/13/98/1398f8b8.jpg]&call=url[file:/product/main]",
			Description:  "Tailored blazer in woven fabric with notched lapels",
			Brand:        "H&M",
			Category:     "Blazers",
			Availability: model.InStock,
			Rating:       4.2,
			ReviewsCount: 156,
		},
		{
			ID:           "hm_002",
			Name:         "High-waisted Trousers",
			Price:        "2299",
			Currency:     "INR",
			URL:          "https://www2.hm.com/en_in/productpage.0975919001.html",
			ImageURL:     "https://lp2.hm.com/hmgoepprod?set=source[/97/59/9759f8b8.jpg]&call=url[file:/product/main]",
			Description:  "High-waisted trousers in stretch fabric",
			Brand:        "H&M",
			Category:     "Trousers",
			Availability: model.InStock,
			Rating:       4.5,
			ReviewsCount: 203,
		},
		{
			ID:           "hm_003",
			Name:         "Statement Chain Necklace",
			Price:        "799",
			Currency:     "INR",
			URL:          "https://www2.hm.com/en_in/productpage.0975919002.html",
			ImageURL:     "https://lp2.hm.com/hmgoepprod?set=source[/97/59/9759f8b9.jpg]&call=url[file:/product/main]",
			Description:  "Gold-colored chain necklace with pendant",
			Brand:        "H&M",
			Category:     "Jewelry",
			Availability: model.Limited,
			Rating:       4.0,
			ReviewsCount: 89,
		},
	}
}

func zaraFallbackCatalog() []model.Product {
	return []model.Product{
		{
			ID:           "zara_001",
			Name:         "Structured Blazer",
			Price:        "5990",
			Currency:     "INR",
			URL:          "https://www.zara.com/in/en/structured-blazer-p07545043.html",
			ImageURL:     "https://static.zara.net/photos//2023/V/07545043_1.jpg",
			Description:  "Structured blazer with shoulder pads",
			Brand:        "Zara",
			Category:     "Blazers",
			Availability: model.InStock,
			Rating:       4.3,
			ReviewsCount: 124,
		},
	}
}

func myntraFallbackCatalog() []model.Product {
	return []model.Product{
		{
			ID:           "myntra_001",
			Name:         "Printed Wrap Dress",
			Price:        "1499",
			Currency:     "INR",
			URL:          "https://www.myntra.com/dresses/printed-wrap-dress",
			ImageURL:     "https://assets.myntassets.com/printed-wrap-dress.jpg",
			Description:  "Floral printed wrap dress with flutter sleeves",
			Brand:        "SASSAFRAS",
			Category:     "Dresses",
			Availability: model.InStock,
			Rating:       4.1,
			ReviewsCount: 312,
		},
		{
			ID:           "myntra_002",
			Name:         "Washed Denim Jacket",
			Price:        "2199",
			Currency:     "INR",
			URL:          "https://www.myntra.com/jackets/washed-denim-jacket",
			ImageURL:     "https://assets.myntassets.com/washed-denim-jacket.jpg",
			Description:  "Light-wash denim jacket with button closure",
			Brand:        "Roadster",
			Category:     "Jackets",
			Availability: model.Limited,
			Rating:       4.4,
			ReviewsCount: 478,
		},
	}
}

func ajioFallbackCatalog() []model.Product {
	return []model.Product{
		{
			ID:           "ajio_001",
			Name:         "Pleated Midi Skirt",
			Price:        "1299",
			Currency:     "INR",
			URL:          "https://www.ajio.com/pleated-midi-skirt",
			ImageURL:     "https://assets.ajio.com/pleated-midi-skirt.jpg",
			Description:  "Accordion-pleated midi skirt with elasticated waist",
			Brand:        "AJIO",
			Category:     "Skirts",
			Availability: model.InStock,
			Rating:       3.9,
			ReviewsCount: 67,
		},
		{
			ID:           "ajio_002",
			Name:         "Canvas Low-top Sneakers",
			Price:        "999",
			Currency:     "INR",
			URL:          "https://www.ajio.com/canvas-low-top-sneakers",
			ImageURL:     "https://assets.ajio.com/canvas-low-top-sneakers.jpg",
			Description:  "Lace-up canvas sneakers with rubber sole",
			Brand:        "Performax",
			Category:     "Sneakers",
			Availability: model.InStock,
			Rating:       4.0,
			ReviewsCount: 154,
		},
	}
}
