package model

import "github.com/shopspring/decimal"

// カタログの商品。IDとライフサイクルはカタログ（Store）が独占的に管理する。
// DefaultQty は表示用のおすすめ数量で、カート状態ではない。
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	DefaultQty  int64           `json:"quantity"`
}
