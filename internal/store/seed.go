package store

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

// デモ用カタログ。
func seedProducts() []model.Product {
	type row struct {
		id       int64
		name     string
		price    string
		qty      int64
		category string
		image    string
		desc     string
		rating   float64
	}

	rows := []row{
		{1, `MacBook Pro 16"`, "2499.99", 1, "Electronics", "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500", "Powerful laptop for professionals", 4.8},
		{2, "iPhone 15 Pro", "999.99", 2, "Electronics", "https://images.unsplash.com/photo-1695634297682-44fd0b94e9e4?w=500", "Latest iPhone model", 4.7},
		{3, "AirPods Pro", "249.99", 1, "Accessories", "https://images.unsplash.com/photo-1585184394271-4c0a47dc59c9?w=500", "Premium wireless earphones", 4.6},
		{4, "Designer T-Shirt", "89.99", 3, "Clothing", "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500", "Premium cotton t-shirt", 4.2},
		{5, "Premium Jeans", "159.99", 1, "Clothing", "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500", "High-quality denim jeans", 4.4},
		{6, "Apple Watch Ultra", "799.99", 1, "Electronics", "https://images.unsplash.com/photo-1630343710705-0bdfd1824d3d?w=500", "Advanced fitness tracking", 4.5},
		{8, "Leather Wallet", "49.99", 1, "Accessories", "https://images.unsplash.com/photo-1627123424574-724758594e1b?w=500", "Genuine leather wallet", 4.1},
		{10, "Bluetooth Speaker", "89.99", 1, "Electronics", "https://images.unsplash.com/photo-1589254066213-a0c9dc853511?w=500", "Portable Bluetooth speaker", 4.5},
		{11, "Running Shoes", "129.99", 2, "Footwear", "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=500", "Comfortable running shoes", 4.3},
		{12, "Smartphone Case", "19.99", 1, "Accessories", "https://images.unsplash.com/photo-1600585152915-28eb5f43bc1a?w=500", "Protective smartphone case", 4.0},
		{13, "Gaming Headset", "99.99", 1, "Accessories", "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=500", "High-quality gaming headset", 4.8},
		{14, "Smart TV", "799.99", 1, "Electronics", "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500", "4K Ultra HD Smart TV", 4.9},
		{15, "Fitness Tracker", "59.99", 1, "Electronics", "https://images.unsplash.com/photo-1576243345690-4e4b79b63288?w=500", "Track your fitness goals", 4.2},
		{16, "Wireless Charger", "29.99", 1, "Accessories", "https://images.unsplash.com/photo-1629121649902-51e3a5418941?w=500", "Fast wireless charging pad", 4.4},
		{17, "Smart Home Hub", "199.99", 1, "Electronics", "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=500", "Control your smart home devices", 4.6},
		{18, "Portable SSD", "129.99", 1, "Electronics", "https://images.unsplash.com/photo-1597289124942-329f238648a9?w=500", "Fast and reliable storage", 4.7},
		{19, "Smart Light Bulb", "19.99", 1, "Electronics", "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=500", "Control your lighting remotely", 4.3},
		{20, "Bluetooth Earbuds", "79.99", 1, "Accessories", "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500", "Compact and wireless earbuds", 4.5},
		{21, "Smart Thermostat", "149.99", 1, "Electronics", "https://images.unsplash.com/photo-1632212717035-747f57c10fe0?w=500", "Control your home temperature", 4.8},
		{22, "Gaming Mouse", "59.99", 1, "Accessories", "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500", "Precision gaming mouse", 4.6},
		{23, "Smart Doorbell", "99.99", 1, "Electronics", "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=500", "See who is at your door", 4.7},
		{24, "Wireless Keyboard", "49.99", 1, "Accessories", "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500", "Ergonomic wireless keyboard", 4.4},
		{25, "Smart Speaker", "99.99", 1, "Electronics", "https://images.unsplash.com/photo-1507646227500-4d389b0012be?w=500", "Voice-controlled smart speaker", 4.9},
	}

	products := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, model.Product{
			ID:          r.id,
			Name:        r.name,
			Price:       decimal.RequireFromString(r.price),
			Category:    r.category,
			Image:       r.image,
			Description: r.desc,
			Rating:      r.rating,
			DefaultQty:  r.qty,
		})
	}
	return products
}
