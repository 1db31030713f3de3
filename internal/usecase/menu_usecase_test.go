package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/usecase"
)

// =====================
// モック
// =====================

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repository.MenuRepository = (*MockMenuRepository)(nil)

// =====================
// メニュー編集
// =====================

// Test: 一覧
func TestMenuUsecase_List(t *testing.T) {
	repo := new(MockMenuRepository)
	repo.On("List", mock.Anything).Return([]model.MenuItem{
		{ID: 1, Label: "Home", Path: "/"},
		{ID: 2, Label: "Cart", Path: "/cart"},
	}, nil)

	uc := usecase.NewMenuUsecase(repo)
	items, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	repo.AssertExpectations(t)
}

// Test: 未ログインの編集は401
func TestMenuUsecase_LoginRequired(t *testing.T) {
	uc := usecase.NewMenuUsecase(new(MockMenuRepository))

	_, err := uc.Create(context.Background(), "", usecase.MenuItemInput{Label: "Home", Path: "/"})
	assertHTTPStatus(t, err, http.StatusUnauthorized)

	err = uc.Update(context.Background(), "", 1, usecase.MenuItemInput{Label: "Home", Path: "/"})
	assertHTTPStatus(t, err, http.StatusUnauthorized)

	err = uc.Delete(context.Background(), "", 1)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

// Test: labelとpathは必須
func TestMenuUsecase_Create_Validation(t *testing.T) {
	repo := new(MockMenuRepository)
	uc := usecase.NewMenuUsecase(repo)

	_, err := uc.Create(context.Background(), "admin@example.com", usecase.MenuItemInput{Label: " ", Path: "/"})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 登録（前後空白は落とす）
func TestMenuUsecase_Create(t *testing.T) {
	repo := new(MockMenuRepository)
	repo.On("Create", mock.Anything, model.MenuItem{Label: "Wishlist", Path: "/wishlist"}).
		Return(model.MenuItem{ID: 3, Label: "Wishlist", Path: "/wishlist"}, nil)

	uc := usecase.NewMenuUsecase(repo)
	item, err := uc.Create(context.Background(), "admin@example.com", usecase.MenuItemInput{
		Label: " Wishlist ",
		Path:  " /wishlist ",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), item.ID)
	repo.AssertExpectations(t)
}

// Test: 存在しない項目の更新・削除は404
func TestMenuUsecase_UpdateDelete_NotFound(t *testing.T) {
	repo := new(MockMenuRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)
	repo.On("Delete", mock.Anything, int64(99)).Return(repository.ErrNotFound)

	uc := usecase.NewMenuUsecase(repo)

	err := uc.Update(context.Background(), "admin@example.com", 99, usecase.MenuItemInput{Label: "X", Path: "/x"})
	assertHTTPStatus(t, err, http.StatusNotFound)

	err = uc.Delete(context.Background(), "admin@example.com", 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
