package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
	"storefront/internal/store"
)

// =====================
// カート
// =====================

// Test: 同じ商品を2回追加しても明細は1行
func TestAddToCart_MergesSameProduct(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "9.99", "Accessories")

	mustAddToCart(t, s, mouse, 2)

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, int64(2), cart[0].Quantity)
}

// Test: 明細は追加時点のスナップショット＋既定値
func TestAddToCart_SnapshotWithDefaults(t *testing.T) {
	s := newTestStore()

	line, err := s.AddToCart(model.Product{
		ID:       42,
		Name:     "Mystery Box",
		Price:    price("15"),
		Category: "Misc",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), line.ProductID)
	assert.Equal(t, "No description provided", line.Description)
	assert.Equal(t, 4.0, line.Rating)
	assert.NotEmpty(t, line.Image)
}

// Test: 不正な商品はカートに入らない
func TestAddToCart_RejectsInvalidProduct(t *testing.T) {
	s := newTestStore()

	_, err := s.AddToCart(model.Product{Name: "Freebie", Price: price("0"), Category: "Misc"})
	_, ok := store.AsValidationError(err)
	assert.True(t, ok)
	assert.Empty(t, s.Cart())
}

// Test: 数量の増減
func TestIncrementDecrementQuantity(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	mustAddToCart(t, s, mouse, 1)

	line, found := s.IncrementQuantity(mouse.ID)
	assert.True(t, found)
	assert.Equal(t, int64(2), line.Quantity)

	line, found = s.DecrementQuantity(mouse.ID)
	assert.True(t, found)
	assert.Equal(t, int64(1), line.Quantity)
}

// Test: 数量の下限は1（1のときの減算はno-op）
func TestDecrementQuantity_FloorsAtOne(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	mustAddToCart(t, s, mouse, 1)

	line, found := s.DecrementQuantity(mouse.ID)
	assert.True(t, found)
	assert.Equal(t, int64(1), line.Quantity)
	assert.Len(t, s.Cart(), 1)
}

// Test: 無い明細の増減は何もしない
func TestIncrementDecrement_AbsentLine(t *testing.T) {
	s := newTestStore()

	_, found := s.IncrementQuantity(999)
	assert.False(t, found)
	_, found = s.DecrementQuantity(999)
	assert.False(t, found)
}

// Test: 削除は2回目がno-op
func TestRemoveFromCart_Idempotent(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	mustAddToCart(t, s, mouse, 1)

	assert.True(t, s.RemoveFromCart(mouse.ID))
	assert.False(t, s.RemoveFromCart(mouse.ID))
	assert.Empty(t, s.Cart())
}

// =====================
// 選択と一括削除
// =====================

// Test: 選択の反転と一括削除
func TestToggleSelectAndDeleteSelected(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	keyboard := mustAddProduct(t, s, "Keyboard", "20", "Accessories")
	lamp := mustAddProduct(t, s, "Lamp", "25", "Home")
	mustAddToCart(t, s, mouse, 1)
	mustAddToCart(t, s, keyboard, 1)
	mustAddToCart(t, s, lamp, 1)

	selected, found := s.ToggleSelect(mouse.ID)
	assert.True(t, found)
	assert.True(t, selected)
	selected, found = s.ToggleSelect(keyboard.ID)
	assert.True(t, found)
	assert.True(t, selected)
	assert.Equal(t, []int64{mouse.ID, keyboard.ID}, s.SelectedIDs())

	deleted := s.DeleteSelected()
	assert.Equal(t, int64(2), deleted)

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, lamp.ID, cart[0].ProductID)
	assert.Empty(t, s.SelectedIDs())
}

// Test: もう一度反転すると選択が外れる
func TestToggleSelect_TwiceUnselects(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	mustAddToCart(t, s, mouse, 1)

	selected, _ := s.ToggleSelect(mouse.ID)
	assert.True(t, selected)
	selected, _ = s.ToggleSelect(mouse.ID)
	assert.False(t, selected)
	assert.Empty(t, s.SelectedIDs())
}

// Test: カートに無いIDは選択できない
func TestToggleSelect_AbsentLine(t *testing.T) {
	s := newTestStore()

	_, found := s.ToggleSelect(999)
	assert.False(t, found)
}

// Test: 明細を消すと選択も外れる
func TestRemoveFromCart_ClearsSelection(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	mustAddToCart(t, s, mouse, 1)
	s.ToggleSelect(mouse.ID)

	s.RemoveFromCart(mouse.ID)
	assert.Empty(t, s.SelectedIDs())
}

// =====================
// 合計と送料
// =====================

// Test: 小計・送料・総計
func TestSummary_FlatShipping(t *testing.T) {
	s := newTestStore()
	mouse := mustAddProduct(t, s, "Mouse", "10", "Accessories")
	mustAddToCart(t, s, mouse, 3)

	sum := s.Summary()
	assert.Equal(t, int64(3), sum.TotalItems)
	assert.True(t, sum.Subtotal.Equal(price("30")))
	assert.True(t, sum.Shipping.Equal(price("10")))
	assert.True(t, sum.GrandTotal.Equal(price("40")))
}

// Test: 小計が100を超えたら送料無料（ちょうど100は有料）
func TestSummary_FreeShippingOver100(t *testing.T) {
	s := newTestStore()
	lamp := mustAddProduct(t, s, "Lamp", "50", "Home")
	mustAddToCart(t, s, lamp, 2)

	sum := s.Summary()
	assert.True(t, sum.Subtotal.Equal(price("100")))
	assert.True(t, sum.Shipping.Equal(price("10")))

	mustAddToCart(t, s, lamp, 1)
	sum = s.Summary()
	assert.True(t, sum.Subtotal.Equal(price("150")))
	assert.True(t, sum.Shipping.Equal(price("0")))
	assert.True(t, sum.GrandTotal.Equal(price("150")))
}

// Test: 空カートの合計
func TestSummary_EmptyCart(t *testing.T) {
	s := newTestStore()

	sum := s.Summary()
	assert.Equal(t, int64(0), sum.TotalItems)
	assert.True(t, sum.Subtotal.Equal(price("0")))
	assert.True(t, sum.Shipping.Equal(price("10")))
}
