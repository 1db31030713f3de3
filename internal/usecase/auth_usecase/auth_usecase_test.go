package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	auth "storefront/internal/usecase/auth_usecase"
)

// =====================
// モック
// =====================

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Load(ctx context.Context) (model.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, a model.Account) (model.Account, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

type stubVerifier struct{ ok bool }

func (v stubVerifier) Verify(hashed string, plain string) bool { return v.ok }

type stubIssuer struct{}

func (stubIssuer) Issue(a model.Account, now time.Time) (string, time.Time, error) {
	return "token-" + a.Email, now.Add(15 * time.Minute), nil
}

type stubClock struct{ t time.Time }

func (c stubClock) Now() time.Time { return c.t }

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// =====================
// 会員登録
// =====================

// Test: 空スロットへの登録
func TestRegisterAccount_EmptySlot(t *testing.T) {
	repo := new(MockAccountRepository)
	hasher := new(MockPasswordHasher)
	repo.On("Load", mock.Anything).Return(model.Account{}, repository.ErrNotFound)
	hasher.On("Hash", "password123").Return("hashed", nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.Email == "taro@example.com" && a.PasswordHash == "hashed"
	})).Return(model.Account{ID: 1, Name: "Taro", Email: "taro@example.com", PasswordHash: "hashed"}, nil)

	uc := auth.NewRegisterAccountUsecase(repo, hasher)
	out, err := uc.Execute(context.Background(), auth.RegisterAccountInput{
		Name:     "Taro",
		Email:    "taro@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "taro@example.com", out.Account.Email)
	// ハッシュは外に出さない
	assert.Empty(t, out.Account.PasswordHash)
	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

// Test: 同じemailが登録済みなら競合
func TestRegisterAccount_SameEmailConflicts(t *testing.T) {
	repo := new(MockAccountRepository)
	hasher := new(MockPasswordHasher)
	repo.On("Load", mock.Anything).Return(model.Account{ID: 1, Email: "taro@example.com"}, nil)

	uc := auth.NewRegisterAccountUsecase(repo, hasher)
	_, err := uc.Execute(context.Background(), auth.RegisterAccountInput{
		Name:     "Taro",
		Email:    "taro@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Test: 別のemailが入っていたらスロットを上書きする
func TestRegisterAccount_DifferentEmailOverwrites(t *testing.T) {
	repo := new(MockAccountRepository)
	hasher := new(MockPasswordHasher)
	repo.On("Load", mock.Anything).Return(model.Account{ID: 1, Email: "old@example.com"}, nil)
	hasher.On("Hash", "password123").Return("hashed", nil)
	repo.On("Save", mock.Anything, mock.Anything).
		Return(model.Account{ID: 1, Name: "Hanako", Email: "hanako@example.com", PasswordHash: "hashed"}, nil)

	uc := auth.NewRegisterAccountUsecase(repo, hasher)
	out, err := uc.Execute(context.Background(), auth.RegisterAccountInput{
		Name:     "Hanako",
		Email:    "hanako@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "hanako@example.com", out.Account.Email)
	repo.AssertExpectations(t)
}

// Test: 入力の検証
func TestRegisterAccount_Validation(t *testing.T) {
	uc := auth.NewRegisterAccountUsecase(new(MockAccountRepository), new(MockPasswordHasher))

	_, err := uc.Execute(context.Background(), auth.RegisterAccountInput{Name: " ", Email: "a@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrNameRequired)

	_, err = uc.Execute(context.Background(), auth.RegisterAccountInput{Name: "Taro", Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailFormat)

	_, err = uc.Execute(context.Background(), auth.RegisterAccountInput{Name: "Taro", Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

// =====================
// ログイン
// =====================

// Test: ログイン成功でトークンが返る
func TestLogin_Success(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("Load", mock.Anything).Return(model.Account{ID: 1, Email: "taro@example.com", PasswordHash: "hashed"}, nil)

	uc := auth.NewLoginUsecase(repo, stubVerifier{ok: true}, stubIssuer{}, stubClock{t: now})
	out, err := uc.Execute(context.Background(), auth.LoginInput{Email: "taro@example.com", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "token-taro@example.com", out.AccessToken)
	assert.Equal(t, now.Add(15*time.Minute), out.ExpiresAt)
	assert.Empty(t, out.Account.PasswordHash)
}

// Test: email不一致・パスワード不一致・スロット空はすべて同じエラー
func TestLogin_InvalidCredentials(t *testing.T) {
	// email不一致
	repo := new(MockAccountRepository)
	repo.On("Load", mock.Anything).Return(model.Account{Email: "taro@example.com", PasswordHash: "hashed"}, nil)
	uc := auth.NewLoginUsecase(repo, stubVerifier{ok: true}, stubIssuer{}, stubClock{t: now})
	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// パスワード不一致
	uc = auth.NewLoginUsecase(repo, stubVerifier{ok: false}, stubIssuer{}, stubClock{t: now})
	_, err = uc.Execute(context.Background(), auth.LoginInput{Email: "taro@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// スロットが空
	empty := new(MockAccountRepository)
	empty.On("Load", mock.Anything).Return(model.Account{}, repository.ErrNotFound)
	uc = auth.NewLoginUsecase(empty, stubVerifier{ok: true}, stubIssuer{}, stubClock{t: now})
	_, err = uc.Execute(context.Background(), auth.LoginInput{Email: "taro@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// =====================
// プロフィール
// =====================

// Test: 本人以外のアカウントには触れない
func TestProfile_NotCurrentAccount(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("Load", mock.Anything).Return(model.Account{Email: "taro@example.com"}, nil)

	uc := auth.NewProfileUsecase(repo, new(MockPasswordHasher))

	_, err := uc.Get(context.Background(), "other@example.com")
	assert.ErrorIs(t, err, auth.ErrNotCurrentAccount)

	err = uc.Delete(context.Background(), "other@example.com")
	assert.ErrorIs(t, err, auth.ErrNotCurrentAccount)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

// Test: パスワード空の更新はハッシュを変えない
func TestProfile_UpdateWithoutPassword(t *testing.T) {
	repo := new(MockAccountRepository)
	hasher := new(MockPasswordHasher)
	repo.On("Load", mock.Anything).Return(model.Account{ID: 1, Name: "Taro", Email: "taro@example.com", PasswordHash: "hashed"}, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.Name == "Taro Yamada" && a.PasswordHash == "hashed"
	})).Return(model.Account{ID: 1, Name: "Taro Yamada", Email: "taro@example.com", PasswordHash: "hashed"}, nil)

	uc := auth.NewProfileUsecase(repo, hasher)
	out, err := uc.Update(context.Background(), "taro@example.com", auth.UpdateProfileInput{
		Name:  "Taro Yamada",
		Email: "taro@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Taro Yamada", out.Name)
	assert.Empty(t, out.PasswordHash)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
	repo.AssertExpectations(t)
}

// Test: 退会でスロットが空になる
func TestProfile_Delete(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("Load", mock.Anything).Return(model.Account{Email: "taro@example.com"}, nil)
	repo.On("Delete", mock.Anything).Return(nil)

	uc := auth.NewProfileUsecase(repo, new(MockPasswordHasher))
	assert.NoError(t, uc.Delete(context.Background(), "taro@example.com"))
	repo.AssertExpectations(t)
}
