package store

import (
	"errors"
	"fmt"
)

var (
	// 対象が存在しない
	ErrNotFound = errors.New("not found")

	// 注文に必要な明細が1件もない
	ErrEmptyCart  = errors.New("cart is empty")
	ErrEmptyOrder = errors.New("order must have at least one item")

	// 注文の所有者ではない
	ErrNotOwner = errors.New("not the order owner")
)

// 入力不備（名前・カテゴリの欠落、価格が正の数でない等）。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
