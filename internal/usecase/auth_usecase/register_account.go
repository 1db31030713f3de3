package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

// 会員登録の入力
type RegisterAccountInput struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// 会員登録の出力
type RegisterAccountOutput struct {
	Account model.Account
}

var (
	// 入力が不正
	ErrNameRequired       = errors.New("name required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")

	// 競合（同じemailがスロットに登録済み）
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// RegisterAccountUsecaseは会員登録の処理。
// スロットは1つだけ：同じemailが登録済みならエラー、
// 別のemailが入っていた場合はスロットを上書きする。
type RegisterAccountUsecase struct {
	accountRepo repository.AccountRepository
	hasher      PasswordHasher
}

// DI
func NewRegisterAccountUsecase(
	accountRepo repository.AccountRepository,
	hasher PasswordHasher,
) *RegisterAccountUsecase {
	return &RegisterAccountUsecase{
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

// 会員登録実行
func (u *RegisterAccountUsecase) Execute(ctx context.Context, in RegisterAccountInput) (RegisterAccountOutput, error) {
	var out RegisterAccountOutput

	if strings.TrimSpace(in.Name) == "" {
		return out, ErrNameRequired
	}
	if !isValidEmailFormat(in.Email) {
		return out, ErrInvalidEmailFormat
	}
	if len(in.Password) < 8 {
		return out, ErrPasswordTooShort
	}

	// スロットの重複チェック
	existing, err := u.accountRepo.Load(ctx)
	if err == nil && existing.Email == in.Email {
		return out, ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	saved, err := u.accountRepo.Save(ctx, model.Account{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
		IsAdmin:      in.IsAdmin,
	})
	if err != nil {
		return out, err
	}

	// 返すときはハッシュを空にして漏洩防止
	saved.PasswordHash = ""
	out.Account = saved
	return out, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hashed string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
