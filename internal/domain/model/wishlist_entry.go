package model

import "github.com/shopspring/decimal"

// ウィッシュリストの1件。商品IDごとに最大1件、数量の概念はない。
type WishlistEntry struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
}
