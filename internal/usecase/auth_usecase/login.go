package auth

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

// ログインの入力
type LoginInput struct {
	Email    string
	Password string
}

// ログインの出力
type LoginOutput struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Account     model.Account `json:"account"`
}

// email・password不一致はどちらも同じエラーにする（存在の推測をさせない）
var ErrInvalidCredentials = errors.New("invalid credentials")

// JWTアクセストークンの発行の約束。
type AccessTokenIssuer interface {
	Issue(a model.Account, now time.Time) (string, time.Time, error)
}

// ハッシュと平文の照合の約束。
type PasswordVerifier interface {
	Verify(hashed string, plain string) bool
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// LoginUsecaseはログインの処理。
type LoginUsecase struct {
	accountRepo repository.AccountRepository
	verifier    PasswordVerifier
	issuer      AccessTokenIssuer
	clock       Clock
}

// DI
func NewLoginUsecase(
	accountRepo repository.AccountRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		accountRepo: accountRepo,
		verifier:    verifier,
		issuer:      issuer,
		clock:       clock,
	}
}

// ログイン実行
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	a, err := u.accountRepo.Load(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	// スロットのemailと一致しなければ失敗
	if a.Email != in.Email {
		return out, ErrInvalidCredentials
	}
	if !u.verifier.Verify(a.PasswordHash, in.Password) {
		return out, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(a, u.clock.Now())
	if err != nil {
		return out, err
	}

	a.PasswordHash = ""
	out.AccessToken = token
	out.ExpiresAt = expiresAt
	out.Account = a
	return out, nil
}
