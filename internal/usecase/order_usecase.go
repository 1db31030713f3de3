package usecase

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/store"
)

// OrderUsecase は注文の作成・編集の業務ロジックです。
// 注文はログイン中のアカウントだけが作成・編集できる。
type OrderUsecase struct {
	store *store.Store
}

// DI
func NewOrderUsecase(s *store.Store) *OrderUsecase {
	return &OrderUsecase{store: s}
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int           `json:"total"`
}

func (u *OrderUsecase) List() OrderListOutput {
	orders := u.store.Orders()
	return OrderListOutput{Items: orders, Total: len(orders)}
}

func (u *OrderUsecase) Get(orderID string) (model.Order, error) {
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	o, err := u.store.OrderByID(orderID)
	if err != nil {
		return model.Order{}, fromStoreError(err)
	}
	return o, nil
}

// PlaceOrder はカート全体から注文を作る（成功でカートは空になる）。
func (u *OrderUsecase) PlaceOrder(actorEmail string) (model.Order, error) {
	if actorEmail == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}
	o, err := u.store.PlaceOrder(actorEmail)
	if err != nil {
		return model.Order{}, fromStoreError(err)
	}
	return o, nil
}

// カスタム注文・注文編集の1行分。
type OrderLineInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CreateCustomOrder はカートから選んだ明細だけで注文を作る。カートは残る。
func (u *OrderUsecase) CreateCustomOrder(actorEmail string, lines []OrderLineInput) (model.Order, error) {
	if actorEmail == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	ids := make([]int64, 0, len(lines))
	quantities := make(map[int64]int64, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
		quantities[l.ProductID] = l.Quantity
	}

	o, err := u.store.CreateCustomOrder(actorEmail, ids, quantities)
	if err != nil {
		return model.Order{}, fromStoreError(err)
	}
	return o, nil
}

// EditOrder は所有者だけが明細を編集できる。残らない明細は削除扱い。
func (u *OrderUsecase) EditOrder(actorEmail string, orderID string, lines []OrderLineInput) (model.Order, error) {
	if actorEmail == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	edits := make([]store.OrderEdit, 0, len(lines))
	for _, l := range lines {
		edits = append(edits, store.OrderEdit{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	o, err := u.store.EditOrder(orderID, actorEmail, edits)
	if err != nil {
		return model.Order{}, fromStoreError(err)
	}
	return o, nil
}
