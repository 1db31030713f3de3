package model

import "github.com/shopspring/decimal"

// 注文の明細。注文時点のスナップショットなので、カタログ編集の影響を受けない。
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int64           `json:"quantity"`
}
