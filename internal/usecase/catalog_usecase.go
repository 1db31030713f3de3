package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	"storefront/internal/store"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Storeの型付きエラーをHTTPエラーへ変換する。
func fromStoreError(err error) error {
	if ve, ok := store.AsValidationError(err); ok {
		return NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrEmptyCart):
		return NewHTTPError(http.StatusBadRequest, "cart is empty")
	case errors.Is(err, store.ErrEmptyOrder):
		return NewHTTPError(http.StatusBadRequest, "order must have at least one item")
	case errors.Is(err, store.ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, "not your order")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}

// CatalogUsecase は商品一覧・検索と管理者のカタログ編集の業務ロジックです。
type CatalogUsecase struct {
	store *store.Store
}

// DI
func NewCatalogUsecase(s *store.Store) *CatalogUsecase {
	return &CatalogUsecase{store: s}
}

// GET /products の入力DTO
type ListProductsInput struct {
	Category string
	Search   string
	Sort     string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (u *CatalogUsecase) ListProducts(in ListProductsInput) (ProductListOutput, error) {
	switch in.Sort {
	case "", store.SortByName, store.SortByPrice, store.SortByRating:
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items := u.store.ListProducts(store.ListQuery{
		Category: in.Category,
		Search:   in.Search,
		Sort:     in.Sort,
	})
	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *CatalogUsecase) GetProductDetail(productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.store.GetProduct(productID)
	if err != nil {
		return model.Product{}, fromStoreError(err)
	}
	return p, nil
}

func (u *CatalogUsecase) Categories() []string {
	return u.store.Categories()
}

func (u *CatalogUsecase) CategoryStats() []store.CategoryCount {
	return u.store.CategoryStats()
}

// 管理者のカタログ編集の入力DTO
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Image       string
	Description string
	Rating      float64
	Quantity    int64
}

func (in ProductInput) toModel() model.Product {
	return model.Product{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Description: in.Description,
		Rating:      in.Rating,
		DefaultQty:  in.Quantity,
	}
}

// AdminCreateProduct は商品を追加する。管理者チェックはmiddleware側。
func (u *CatalogUsecase) AdminCreateProduct(actorEmail string, in ProductInput) (model.Product, error) {
	if actorEmail == "" {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}
	p, err := u.store.AddProduct(in.toModel())
	if err != nil {
		return model.Product{}, fromStoreError(err)
	}
	return p, nil
}

func (u *CatalogUsecase) AdminUpdateProduct(actorEmail string, productID int64, in ProductInput) (model.Product, error) {
	if actorEmail == "" {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	p, err := u.store.UpdateProduct(productID, in.toModel())
	if err != nil {
		return model.Product{}, fromStoreError(err)
	}
	return p, nil
}

func (u *CatalogUsecase) AdminDeleteProduct(actorEmail string, productID int64) error {
	if actorEmail == "" {
		return NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.store.DeleteProduct(productID); err != nil {
		return fromStoreError(err)
	}
	return nil
}
