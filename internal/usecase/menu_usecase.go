package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// MenuUsecase はナビメニュー編集の業務ロジックです。
type MenuUsecase struct {
	menuRepo repo.MenuRepository
}

// DI
func NewMenuUsecase(menuRepo repo.MenuRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

type MenuItemInput struct {
	Label string
	Path  string
}

func (u *MenuUsecase) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) Create(ctx context.Context, actorEmail string, in MenuItemInput) (model.MenuItem, error) {
	if actorEmail == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if strings.TrimSpace(in.Label) == "" || strings.TrimSpace(in.Path) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "label and path required")
	}

	item, err := u.menuRepo.Create(ctx, model.MenuItem{
		Label: strings.TrimSpace(in.Label),
		Path:  strings.TrimSpace(in.Path),
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *MenuUsecase) Update(ctx context.Context, actorEmail string, id int64, in MenuItemInput) error {
	if actorEmail == "" {
		return NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Label) == "" || strings.TrimSpace(in.Path) == "" {
		return NewHTTPError(http.StatusBadRequest, "label and path required")
	}

	err := u.menuRepo.Update(ctx, model.MenuItem{
		ID:    id,
		Label: strings.TrimSpace(in.Label),
		Path:  strings.TrimSpace(in.Path),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *MenuUsecase) Delete(ctx context.Context, actorEmail string, id int64) error {
	if actorEmail == "" {
		return NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.menuRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
