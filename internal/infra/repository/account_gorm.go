package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// アカウントスロットの固定ID。1行しか存在しない。
const accountSlotID int64 = 1

type AccountGormRepository struct {
	db *gorm.DB
}

// DI
func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// Load はスロットの中身を返す。
func (r *AccountGormRepository) Load(ctx context.Context) (model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).First(&a, accountSlotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Account{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Account{}, err
	}
	return a, nil
}

// Save はスロットを上書きする（空なら作成）。
func (r *AccountGormRepository) Save(ctx context.Context, a model.Account) (model.Account, error) {
	a.ID = accountSlotID
	err := r.db.WithContext(ctx).Save(&a).Error
	if err != nil {
		return model.Account{}, err
	}
	return a, nil
}

// Delete はスロットを空にする。空でもエラーにしない。
func (r *AccountGormRepository) Delete(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&model.Account{}, accountSlotID).Error
}
