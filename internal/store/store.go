package store

import (
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/internal/domain/model"
)

// 注文ID等を作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// Store はカタログ・カート・ウィッシュリスト・注文履歴と
// 一括削除用の選択状態を1か所で持つ。
// 全ての変更は公開メソッド経由で行い、各操作はロック1回の中で完結する。
// 検証に失敗した操作は状態を一切変更しない。
type Store struct {
	mu sync.Mutex

	products []model.Product
	cart     []model.CartLine
	wishlist []model.WishlistEntry
	orders   []model.Order

	// 一括削除用に選択中のカート明細（商品ID）。永続化しない。
	selected map[int64]struct{}

	nextProductID int64

	idGen    IDGenerator
	clock    Clock
	collator *collate.Collator
}

// DI
func New(idGen IDGenerator, clock Clock) *Store {
	return &Store{
		selected:      make(map[int64]struct{}),
		nextProductID: 1,
		idGen:         idGen,
		clock:         clock,
		collator:      collate.New(language.English, collate.Loose),
	}
}

// NewSeeded はデモ用カタログを積んだStoreを返す。
func NewSeeded(idGen IDGenerator, clock Clock) *Store {
	s := New(idGen, clock)
	s.products = seedProducts()
	for _, p := range s.products {
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
	return s
}
