package usecase

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/store"
)

// WishlistUsecase は /wishlist の業務ロジックです。
type WishlistUsecase struct {
	store *store.Store
}

// DI
func NewWishlistUsecase(s *store.Store) *WishlistUsecase {
	return &WishlistUsecase{store: s}
}

func (u *WishlistUsecase) List() []model.WishlistEntry {
	return u.store.Wishlist()
}

type WishlistAddOutput struct {
	Entry model.WishlistEntry `json:"entry"`
	// すでに登録済みだった場合true。エラーではなく「登録済み」の通知として扱う。
	AlreadyPresent bool `json:"already_present"`
}

// Add は商品をウィッシュリストへ追加する。
// 重複は失敗ではなく AlreadyPresent=true の成功として返す（表示文言が変わるだけ）。
func (u *WishlistUsecase) Add(productID int64) (WishlistAddOutput, error) {
	if productID <= 0 {
		return WishlistAddOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.store.GetProduct(productID)
	if err != nil {
		return WishlistAddOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	entry, added := u.store.AddToWishlist(p)
	return WishlistAddOutput{Entry: entry, AlreadyPresent: !added}, nil
}

// Remove は1件削除する。無ければ removed=false の成功。
func (u *WishlistUsecase) Remove(productID int64) RemoveOutput {
	return RemoveOutput{Removed: u.store.RemoveFromWishlist(productID)}
}
