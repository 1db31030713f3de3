package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

// 追加時に埋める既定値。
const (
	defaultImage       = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e"
	defaultDescription = "No description provided"
	defaultRating      = 4.0
)

// 送料。小計が閾値を超えたら無料。
var (
	freeShippingOver = decimal.NewFromInt(100)
	shippingFee      = decimal.NewFromInt(10)
)

// AddToCart は商品をカートへ1個追加する。
// 同じ商品の明細があれば数量+1で合流し、なければ追加時点のスナップショットで
// 数量1の明細を作る。明細が商品ごとに2行できることはない。
func (s *Store) AddToCart(p model.Product) (model.CartLine, error) {
	if strings.TrimSpace(p.Name) == "" {
		return model.CartLine{}, newValidationError("name", "required")
	}
	if !p.Price.IsPositive() {
		return model.CartLine{}, newValidationError("price", "must be a positive number")
	}
	if strings.TrimSpace(p.Category) == "" {
		return model.CartLine{}, newValidationError("category", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == p.ID {
			s.cart[i].Quantity++
			return s.cart[i], nil
		}
	}

	line := model.CartLine{
		ProductID:   p.ID,
		Quantity:    1,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
		Rating:      p.Rating,
	}
	if line.Image == "" {
		line.Image = defaultImage
	}
	if line.Description == "" {
		line.Description = defaultDescription
	}
	if line.Rating <= 0 {
		line.Rating = defaultRating
	}

	s.cart = append(s.cart, line)
	return line, nil
}

// IncrementQuantity は明細の数量を1増やす。明細が無ければ何もしない。
func (s *Store) IncrementQuantity(productID int64) (model.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity++
			return s.cart[i], true
		}
	}
	return model.CartLine{}, false
}

// DecrementQuantity は明細の数量を1減らす。下限は1で、1のときは何もしない。
// 明細の削除は別操作（RemoveFromCart）。
func (s *Store) DecrementQuantity(productID int64) (model.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			if s.cart[i].Quantity > 1 {
				s.cart[i].Quantity--
			}
			return s.cart[i], true
		}
	}
	return model.CartLine{}, false
}

// RemoveFromCart は明細を削除し、選択状態からも外す。
// 無ければ何もしない（2回目の呼び出しはただのno-op）。
func (s *Store) RemoveFromCart(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLine(productID)
}

// 呼び出し側がロックを握っていること。
func (s *Store) removeLine(productID int64) bool {
	delete(s.selected, productID)
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return true
		}
	}
	return false
}

// Cart は現在の明細のコピーを返す。
func (s *Store) Cart() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// ToggleSelect は一括削除用の選択を反転する。
// 明細が無いIDは選択できない。戻り値は反転後に選択中かどうか。
func (s *Store) ToggleSelect(productID int64) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			found = true
			break
		}
	}
	if !found {
		return false, false
	}

	if _, ok := s.selected[productID]; ok {
		delete(s.selected, productID)
		return false, true
	}
	s.selected[productID] = struct{}{}
	return true, true
}

// SelectedIDs は選択中の明細IDを明細の並び順で返す。
func (s *Store) SelectedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.selected))
	for _, line := range s.cart {
		if _, ok := s.selected[line.ProductID]; ok {
			ids = append(ids, line.ProductID)
		}
	}
	return ids
}

// DeleteSelected は選択中の明細をまとめて削除して選択を空にする。
// 途中状態は外から観測できない（ロック1回の中で完結）。戻り値は削除件数。
func (s *Store) DeleteSelected() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id := range s.selected {
		if s.removeLine(id) {
			deleted++
		}
	}
	s.selected = make(map[int64]struct{})
	return deleted
}

// カートの合計。
type CartSummary struct {
	TotalItems int64           `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Summary は数量合計・小計・送料・総計を返す。
// 送料は小計が100を超えたら0、それ以外は一律10。
func (s *Store) Summary() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totalItems int64
	subtotal := decimal.Zero
	for _, line := range s.cart {
		totalItems += line.Quantity
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}

	return CartSummary{
		TotalItems: totalItems,
		Subtotal:   subtotal,
		Shipping:   shipping,
		GrandTotal: subtotal.Add(shipping),
	}
}
