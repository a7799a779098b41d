package repository

import "github.com/alibix/storefront/internal/catalog/domain"

func ptr(v float64) *float64 { return &v }

// SeedProducts returns the demo catalog used when no database is configured
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Wireless Earbuds Pro", Description: "Noise cancelling wireless earbuds",
			Category: "electronics", Brand: "SoundCore", Price: 4500, DiscountPrice: ptr(3800),
			Stock: 42, Rating: 4.6, Reviews: 318, Featured: true,
			Images: []string{"/images/earbuds-pro.jpg"},
		},
		{
			ID: 2, Name: "Smart Watch Series 5", Description: "Fitness tracking smart watch",
			Category: "electronics", Brand: "TechFit", Price: 12000,
			Stock: 18, Rating: 4.3, Reviews: 154, Featured: true, IsNew: true,
			Images: []string{"/images/smart-watch.jpg"},
		},
		{
			ID: 3, Name: "Cotton Kurta", NameUrdu: "سوتی کرتا", Description: "Embroidered cotton kurta",
			Category: "clothing", Brand: "Khaadi", Price: 2800, DiscountPrice: ptr(2200),
			Stock: 65, Rating: 4.1, Reviews: 89,
			Images: []string{"/images/cotton-kurta.jpg"},
		},
		{
			ID: 4, Name: "Running Shoes", Description: "Lightweight running shoes",
			Category: "shoes", Brand: "SprintX", Price: 6500,
			Stock: 30, Rating: 4.4, Reviews: 201, IsNew: true,
			Images: []string{"/images/running-shoes.jpg"},
		},
		{
			ID: 5, Name: "Leather Wallet", Description: "Handcrafted leather wallet",
			Category: "accessories", Brand: "Hide&Co", Price: 1500,
			Stock: 120, Rating: 4.0, Reviews: 47,
			Images: []string{"/images/leather-wallet.jpg"},
		},
		{
			ID: 6, Name: "Bluetooth Speaker", Description: "Portable bluetooth speaker",
			Category: "electronics", Brand: "SoundCore", Price: 3200, DiscountPrice: ptr(2700),
			Stock: 8, Rating: 4.5, Reviews: 263, Featured: true,
			Images: []string{"/images/bt-speaker.jpg"},
		},
		{
			ID: 7, Name: "Denim Jacket", Description: "Classic denim jacket",
			Category: "clothing", Brand: "Outfitters", Price: 5400,
			Stock: 22, Rating: 3.9, Reviews: 36,
			Images: []string{"/images/denim-jacket.jpg"},
		},
		{
			ID: 8, Name: "Gaming Laptop GX", Description: "High performance gaming laptop",
			Category: "electronics", Brand: "TechFit", Price: 185000, DiscountPrice: ptr(172000),
			Stock: 5, Rating: 4.8, Reviews: 74, Featured: true, IsNew: true,
			Images: []string{"/images/gaming-laptop.jpg"},
		},
	}
}

// SeedCategories returns the demo category list
func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Electronics", Slug: "electronics", Image: "/images/cat-electronics.jpg"},
		{ID: 2, Name: "Clothing", NameUrdu: "کپڑے", Slug: "clothing", Image: "/images/cat-clothing.jpg"},
		{ID: 3, Name: "Shoes", Slug: "shoes", Image: "/images/cat-shoes.jpg"},
		{ID: 4, Name: "Accessories", Slug: "accessories", Image: "/images/cat-accessories.jpg"},
	}
}
