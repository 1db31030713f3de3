package store

import (
	"sort"
	"strings"

	"storefront/internal/domain/model"
)

// 「すべて」を意味するカテゴリのワイルドカード。
const CategoryAll = "All"

const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"
)

// カタログ一覧の検索条件。
type ListQuery struct {
	Category string // 完全一致。空または"All"は全件
	Search   string // 商品名の部分一致（大文字小文字を無視）
	Sort     string // name / price / rating
}

// ListProducts は毎回その場で絞り込みとソートをやり直す（キャッシュしない）。
// name は辞書順の昇順、price は昇順、rating は降順。
// 同値は元の並び順を保つ（安定ソート）。
func (s *Store) ListProducts(q ListQuery) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case SortByRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return s.collator.CompareString(result[i].Name, result[j].Name) < 0
		})
	}

	return result
}

// GetProduct はIDで商品を返す。
func (s *Store) GetProduct(id int64) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}

// Categories は"All"と、登場順のカテゴリ一覧を返す。
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.products))
	categories := []string{CategoryAll}
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// カテゴリごとの商品数。
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CategoryStats はカテゴリ別の商品数を登場順で返す。
func (s *Store) CategoryStats() []CategoryCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.products))
	stats := make([]CategoryCount, 0)
	for _, p := range s.products {
		if i, ok := index[p.Category]; ok {
			stats[i].Count++
			continue
		}
		index[p.Category] = len(stats)
		stats = append(stats, CategoryCount{Category: p.Category, Count: 1})
	}
	return stats
}

// AddProduct は検証のうえ新しいIDを振って商品を登録する。
// 追加後に整合パスを実行する。
func (s *Store) AddProduct(p model.Product) (model.Product, error) {
	if err := validateProduct(p); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.Name = strings.TrimSpace(p.Name)
	p.ID = s.nextProductID
	s.nextProductID++
	applyProductDefaults(&p)

	s.products = append(s.products, p)
	s.reconcileCart()
	return p, nil
}

// UpdateProduct は既存商品を検証のうえ上書きする。IDは変わらない。
func (s *Store) UpdateProduct(id int64, p model.Product) (model.Product, error) {
	if err := validateProduct(p); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		p.ID = id
		applyProductDefaults(&p)
		s.products[i] = p
		s.reconcileCart()
		return p, nil
	}
	return model.Product{}, ErrNotFound
}

// DeleteProduct は商品を無条件に削除する。
// カートからの掃除は削除後の整合パスが行う。
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
		s.reconcileCart()
		return nil
	}
	return ErrNotFound
}

// reconcileCart はカート明細を検証して無効な行を落とす。
// 落とすのは (a) 商品がカタログに存在しない、(b) スナップショット価格が正の数でない、
// のどちらかの場合だけ。商品が残っている限り、他のフィールドが変わっても落とさない。
// 2回実行しても結果は同じ（冪等）。
// 呼び出し側がロックを握っていること。
func (s *Store) reconcileCart() {
	ids := make(map[int64]struct{}, len(s.products))
	for _, p := range s.products {
		ids[p.ID] = struct{}{}
	}

	kept := s.cart[:0]
	for _, line := range s.cart {
		if _, ok := ids[line.ProductID]; !ok || !line.Price.IsPositive() {
			delete(s.selected, line.ProductID)
			continue
		}
		kept = append(kept, line)
	}
	s.cart = kept
}

// 名前・カテゴリは必須、価格は正の数。
func validateProduct(p model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return newValidationError("name", "required")
	}
	if !p.Price.IsPositive() {
		return newValidationError("price", "must be a positive number")
	}
	if strings.TrimSpace(p.Category) == "" {
		return newValidationError("category", "required")
	}
	return nil
}

// 任意フィールドの既定値を埋める。
func applyProductDefaults(p *model.Product) {
	if p.Image == "" {
		p.Image = defaultImage
	}
	if p.Rating <= 0 {
		p.Rating = defaultRating
	}
	if p.DefaultQty < 1 {
		p.DefaultQty = 1
	}
}
