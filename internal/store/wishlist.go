package store

import "storefront/internal/domain/model"

// AddToWishlist は商品をウィッシュリストへ追加する。
// すでに入っている場合はエラーではなく added=false（「登録済み」）を返し、
// リストは変更しない。
func (s *Store) AddToWishlist(p model.Product) (model.WishlistEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.wishlist {
		if e.ProductID == p.ID {
			return e, false
		}
	}

	entry := model.WishlistEntry{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
		Rating:      p.Rating,
	}
	s.wishlist = append(s.wishlist, entry)
	return entry, true
}

// RemoveFromWishlist は1件削除する。無ければ何もしない。
func (s *Store) RemoveFromWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ProductID == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return true
		}
	}
	return false
}

// Wishlist は現在の内容のコピーを返す。
func (s *Store) Wishlist() []model.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.WishlistEntry, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}
