package model

import "github.com/shopspring/decimal"

// カートの明細。商品1つにつき明細は最大1行。
// 追加時点の商品情報（価格・名前など）をスナップショットとして必ず保存。
// 以後のカタログ編集では変わらない。
type CartLine struct {
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
}
