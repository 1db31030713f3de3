package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// メニュー項目の永続化（保存・取得）だけを約束。
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
