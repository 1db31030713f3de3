package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文。カート全体または選択した一部から作成され、以後は所有者のみ編集できる。
// 削除はされない。
type Order struct {
	ID         string          `json:"id"`
	OwnerEmail string          `json:"owner_email"`
	Items      []OrderItem     `json:"items"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}
