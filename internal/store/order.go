package store

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

// 注文編集・カスタム注文の1行分の入力。
type OrderEdit struct {
	ProductID int64
	Quantity  int64
}

// PlaceOrder はカート全体から注文を作る。
// 成功したらカートと選択状態を空にする。ログイン確認は呼び出し側の責務。
func (s *Store) PlaceOrder(ownerEmail string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	order := s.appendOrder(ownerEmail, items)

	s.cart = nil
	s.selected = make(map[int64]struct{})
	return order, nil
}

// CreateCustomOrder はカートの一部だけを選んで注文を作る。カートは変更しない。
// 数量は1未満（未指定を含む）なら1に引き上げる。
// カートに無いIDは読み飛ばし、結果が空なら ErrEmptyOrder。
func (s *Store) CreateCustomOrder(ownerEmail string, productIDs []int64, quantities map[int64]int64) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.OrderItem, 0, len(productIDs))
	for _, id := range productIDs {
		for _, line := range s.cart {
			if line.ProductID != id {
				continue
			}
			items = append(items, model.OrderItem{
				ProductID: line.ProductID,
				Name:      line.Name,
				Price:     line.Price,
				Image:     line.Image,
				Quantity:  coerceQuantity(quantities[id]),
			})
			break
		}
	}

	if len(items) == 0 {
		return model.Order{}, ErrEmptyOrder
	}

	return s.appendOrder(ownerEmail, items), nil
}

// EditOrder は所有者だけが注文の明細を編集できる。
// editsに無い既存明細は削除扱い。注文に無い商品IDは読み飛ばす。
// 残る明細が0件になる編集は受け付けず、注文は元のまま。
// 価格は注文時のスナップショットを維持し、合計だけ再計算する。
func (s *Store) EditOrder(orderID string, ownerEmail string, edits []OrderEdit) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if s.orders[i].OwnerEmail != ownerEmail {
			return model.Order{}, ErrNotOwner
		}

		items := make([]model.OrderItem, 0, len(edits))
		for _, edit := range edits {
			for _, it := range s.orders[i].Items {
				if it.ProductID != edit.ProductID {
					continue
				}
				it.Quantity = coerceQuantity(edit.Quantity)
				items = append(items, it)
				break
			}
		}
		if len(items) == 0 {
			return model.Order{}, ErrEmptyOrder
		}

		s.orders[i].Items = items
		s.orders[i].Total = orderTotal(items)
		return copyOrder(s.orders[i]), nil
	}
	return model.Order{}, ErrNotFound
}

// Orders は注文履歴のコピーを返す。
func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	return out
}

// OrderByID は1件取得。
func (s *Store) OrderByID(orderID string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return copyOrder(o), nil
		}
	}
	return model.Order{}, ErrNotFound
}

// 呼び出し側がロックを握っていること。
func (s *Store) appendOrder(ownerEmail string, items []model.OrderItem) model.Order {
	order := model.Order{
		ID:         s.idGen.NewID(),
		OwnerEmail: ownerEmail,
		Items:      items,
		Total:      orderTotal(items),
		CreatedAt:  s.clock.Now(),
	}
	s.orders = append(s.orders, order)
	return copyOrder(order)
}

func orderTotal(items []model.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

// 不正な数量は黙って1に倒す。
func coerceQuantity(q int64) int64 {
	if q < 1 {
		return 1
	}
	return q
}

func copyOrder(o model.Order) model.Order {
	items := make([]model.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
