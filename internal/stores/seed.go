package stores

import (
	"time"

	"luxeshop/internal/domain"
)

// seedProducts is the baseline catalog used when both the local
// snapshot and the document store are empty.
func seedProducts() []domain.Product {
	now := time.Now().UTC()
	mk := func(id, name string, price float64, category, desc string, stock int, rating float64, reviews int) domain.Product {
		return domain.Product{
			ID: id, Name: name, Price: price, Category: category,
			Description: desc, Stock: stock, Rating: rating, Reviews: reviews,
			CreatedAt: now, UpdatedAt: now,
		}
	}
	return []domain.Product{
		mk("fashion-1", "Premium Cotton T-Shirt", 49.99, "Fashion", "Soft, breathable cotton t-shirt for everyday wear", 45, 4.5, 128),
		mk("fashion-2", "Designer Jeans", 129.99, "Fashion", "Classic fit denim jeans with modern styling", 62, 4.7, 256),
		mk("fashion-3", "Leather Jacket", 299.99, "Fashion", "Genuine leather jacket with premium finish", 18, 4.8, 89),
		mk("electronics-1", "Wireless Headphones", 199.99, "Electronics", "Premium noise-cancelling wireless headphones", 34, 4.8, 412),
		mk("electronics-2", "Smart Speaker", 129.99, "Electronics", "Voice-activated smart speaker with AI assistant", 56, 4.5, 287),
		mk("electronics-3", "4K Monitor", 449.99, "Electronics", "Ultra HD 27-inch display for work and gaming", 22, 4.7, 156),
		mk("footwear-1", "Running Shoes", 139.99, "Footwear", "Lightweight running shoes with excellent cushioning", 58, 4.7, 245),
		mk("footwear-2", "Leather Boots", 249.99, "Footwear", "Durable leather boots for all seasons", 29, 4.8, 167),
		mk("accessories-1", "Leather Wallet", 59.99, "Accessories", "Genuine leather bi-fold wallet", 74, 4.6, 201),
		mk("accessories-2", "Designer Sunglasses", 149.99, "Accessories", "UV protection sunglasses with premium frames", 42, 4.7, 163),
		mk("smartwatches-1", "Fitness Tracker", 199.99, "Smart Watches", "Track your health and fitness goals", 44, 4.6, 287),
		mk("sprays-1", "Luxury Perfume", 119.99, "Fragrances", "Elegant fragrance for special occasions", 36, 4.7, 95),
	}
}
