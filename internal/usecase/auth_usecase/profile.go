package auth

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

// 本人のアカウント以外は触れない
var ErrNotCurrentAccount = errors.New("not the current account")

// プロフィール更新の入力。Passwordが空なら変更なし。
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUsecaseはプロフィールの取得・更新・削除の処理。
type ProfileUsecase struct {
	accountRepo repository.AccountRepository
	hasher      PasswordHasher
}

// DI
func NewProfileUsecase(
	accountRepo repository.AccountRepository,
	hasher PasswordHasher,
) *ProfileUsecase {
	return &ProfileUsecase{
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

// Get はログイン中のアカウントを返す。
func (u *ProfileUsecase) Get(ctx context.Context, actorEmail string) (model.Account, error) {
	a, err := u.accountRepo.Load(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if a.Email != actorEmail {
		return model.Account{}, ErrNotCurrentAccount
	}
	a.PasswordHash = ""
	return a, nil
}

// Update は名前・email・（任意で）パスワードを更新する。
func (u *ProfileUsecase) Update(ctx context.Context, actorEmail string, in UpdateProfileInput) (model.Account, error) {
	a, err := u.accountRepo.Load(ctx)
	if err != nil {
		return model.Account{}, err
	}
	if a.Email != actorEmail {
		return model.Account{}, ErrNotCurrentAccount
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Account{}, ErrNameRequired
	}
	if !isValidEmailFormat(in.Email) {
		return model.Account{}, ErrInvalidEmailFormat
	}

	a.Name = strings.TrimSpace(in.Name)
	a.Email = in.Email
	if in.Password != "" {
		if len(in.Password) < 8 {
			return model.Account{}, ErrPasswordTooShort
		}
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return model.Account{}, err
		}
		a.PasswordHash = hashed
	}

	saved, err := u.accountRepo.Save(ctx, a)
	if err != nil {
		return model.Account{}, err
	}

	saved.PasswordHash = ""
	return saved, nil
}

// Delete はスロットを空にする（退会）。
func (u *ProfileUsecase) Delete(ctx context.Context, actorEmail string) error {
	a, err := u.accountRepo.Load(ctx)
	if err != nil {
		return err
	}
	if a.Email != actorEmail {
		return ErrNotCurrentAccount
	}
	return u.accountRepo.Delete(ctx)
}
