package usecase

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/store"
)

// CartUsecase は /cart の業務ロジックです。
// カートはデモ用の共有Storeに1つだけ持つ。
type CartUsecase struct {
	store *store.Store
}

// DI
func NewCartUsecase(s *store.Store) *CartUsecase {
	return &CartUsecase{store: s}
}

type CartOutput struct {
	Items   []model.CartLine  `json:"items"`
	Summary store.CartSummary `json:"summary"`
}

// GetCart は明細と合計をまとめて返す。
func (u *CartUsecase) GetCart() CartOutput {
	return CartOutput{
		Items:   u.store.Cart(),
		Summary: u.store.Summary(),
	}
}

// AddToCart はカタログの商品をカートへ1個追加する（同一商品は数量+1で合流）。
func (u *CartUsecase) AddToCart(productID int64) (model.CartLine, error) {
	if productID <= 0 {
		return model.CartLine{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.store.GetProduct(productID)
	if err != nil {
		return model.CartLine{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	line, err := u.store.AddToCart(p)
	if err != nil {
		return model.CartLine{}, fromStoreError(err)
	}
	return line, nil
}

// 数量+1。明細が無ければ404。
func (u *CartUsecase) Increment(productID int64) (model.CartLine, error) {
	line, ok := u.store.IncrementQuantity(productID)
	if !ok {
		return model.CartLine{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return line, nil
}

// 数量-1（下限1）。1のときはそのまま返る（エラーではない）。
func (u *CartUsecase) Decrement(productID int64) (model.CartLine, error) {
	line, ok := u.store.DecrementQuantity(productID)
	if !ok {
		return model.CartLine{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return line, nil
}

type RemoveOutput struct {
	Removed bool `json:"removed"`
}

// 明細削除。既に無い場合も removed=false で成功として返す。
func (u *CartUsecase) Remove(productID int64) RemoveOutput {
	return RemoveOutput{Removed: u.store.RemoveFromCart(productID)}
}

type ToggleSelectOutput struct {
	Selected bool `json:"selected"`
}

// 一括削除用の選択を反転する。
func (u *CartUsecase) ToggleSelect(productID int64) (ToggleSelectOutput, error) {
	selected, ok := u.store.ToggleSelect(productID)
	if !ok {
		return ToggleSelectOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return ToggleSelectOutput{Selected: selected}, nil
}

type DeleteSelectedOutput struct {
	Deleted int64 `json:"deleted"`
}

// 選択中の明細をまとめて削除する。
func (u *CartUsecase) DeleteSelected() DeleteSelectedOutput {
	return DeleteSelectedOutput{Deleted: u.store.DeleteSelected()}
}

// Summary はカートの合計だけを返す。
func (u *CartUsecase) Summary() store.CartSummary {
	return u.store.Summary()
}
