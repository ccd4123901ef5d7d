package catalog

import "storefront-bff/internal/models"

// Built-in sample catalog, the secondary source behind the live backend.
// Keeps the home surface populated while the catalog service is down.

func fixtureCategories() []models.Category {
	return []models.Category{
		{
			ID:          "fixture-cat-1",
			Name:        "Earrings",
			Description: "Handcrafted earrings with unique designs",
			Image:       models.Image{URL: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=300&fit=crop"},
		},
		{
			ID:          "fixture-cat-2",
			Name:        "Paintings",
			Description: "Beautiful paintings for your home",
			Image:       models.Image{URL: "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=400&h=300&fit=crop"},
		},
		{
			ID:          "fixture-cat-3",
			Name:        "Necklaces",
			Description: "Elegant handcrafted necklaces",
			Image:       models.Image{URL: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400&h=300&fit=crop"},
		},
		{
			ID:          "fixture-cat-4",
			Name:        "Wall Art",
			Description: "Artistic wall decorations",
			Image:       models.Image{URL: "https://images.unsplash.com/photo-1513519245088-0e12902e35ca?w=400&h=300&fit=crop"},
		},
	}
}

func fixtureFeatured() []models.Product {
	return []models.Product{
		{
			ID:          "fixture-prod-1",
			Name:        "Rose Gold Hoop Earrings",
			Description: "Elegant rose gold plated hoop earrings with intricate detailing.",
			Price:       1299,
			Category:    models.Category{ID: "fixture-cat-1", Name: "Earrings"},
			Images:      []models.Image{{URL: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=500&h=500&fit=crop"}},
			Rating:      4.5,
			NumReviews:  23,
			Stock:       15,
			IsFeatured:  true,
		},
		{
			ID:          "fixture-prod-2",
			Name:        "Abstract Canvas Painting",
			Description: "A vibrant abstract painting on canvas, hand-painted with acrylics.",
			Price:       3499,
			Category:    models.Category{ID: "fixture-cat-2", Name: "Paintings"},
			Images:      []models.Image{{URL: "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=500&h=500&fit=crop"}},
			Rating:      4.8,
			NumReviews:  12,
			Stock:       3,
			IsFeatured:  true,
		},
		{
			ID:          "fixture-prod-3",
			Name:        "Pearl Drop Necklace",
			Description: "Delicate freshwater pearl necklace on a sterling silver chain.",
			Price:       1899,
			Category:    models.Category{ID: "fixture-cat-3", Name: "Necklaces"},
			Images:      []models.Image{{URL: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=500&h=500&fit=crop"}},
			Rating:      4.6,
			NumReviews:  18,
			Stock:       8,
			IsFeatured:  true,
		},
		{
			ID:          "fixture-prod-4",
			Name:        "Botanical Wall Hanging",
			Description: "Hand-pressed botanical art in a minimal wooden frame.",
			Price:       2199,
			Category:    models.Category{ID: "fixture-cat-4", Name: "Wall Art"},
			Images:      []models.Image{{URL: "https://images.unsplash.com/photo-1513519245088-0e12902e35ca?w=500&h=500&fit=crop"}},
			Rating:      4.4,
			NumReviews:  9,
			Stock:       11,
			IsFeatured:  true,
		},
	}
}
