package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// アカウントの永続化。覚えておけるのは固定の1スロットだけで、
// 複数アカウントの一覧は持たない。
type AccountRepository interface {
	// Load はスロットの中身を返す。空なら ErrNotFound。
	Load(ctx context.Context) (model.Account, error)
	// Save はスロットを上書きする。
	Save(ctx context.Context, a model.Account) (model.Account, error)
	// Delete はスロットを空にする。
	Delete(ctx context.Context) error
}
