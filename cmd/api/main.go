package main

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/server"
	"storefront/internal/store"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// JWTアクセストークンの発行。claimsにemail・名前・管理者フラグを積む。
type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(a model.Account, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      a.Email,
		"name":     a.Name,
		"is_admin": a.IsAdmin,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.GoEnv == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func main() {
	// .env は無くてもよい（環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	//アカウントスロットとメニューの永続化先
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.MenuItem{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto migrate failed")
	}

	//Repository（GORM実装）生成
	accountRepo := infraRepo.NewAccountGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//カタログ・カート・注文のStore（プロセス内、デモ用シード入り）
	st := store.NewSeeded(idGen, clock)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(st)
	cartUC := usecase.NewCartUsecase(st)
	wishlistUC := usecase.NewWishlistUsecase(st)
	orderUC := usecase.NewOrderUsecase(st)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	registerUC := auth.NewRegisterAccountUsecase(accountRepo, hasher)
	loginUC := auth.NewLoginUsecase(accountRepo, verifier, issuer, clock)
	profileUC := auth.NewProfileUsecase(accountRepo, hasher)

	//Handler生成
	handlers := server.Handlers{
		Product:      handler.NewProductHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC),
		Wishlist:     handler.NewWishlistHandler(wishlistUC),
		Order:        handler.NewOrderHandler(orderUC),
		AdminProduct: handler.NewAdminProductHandler(catalogUC),
		Menu:         handler.NewMenuHandler(menuUC),
		Auth:         handler.NewAuthHandler(registerUC, loginUC, profileUC),
	}

	//Server起動
	addr := ":" + cfg.Port
	e := server.New(cfg, logger, handlers)

	logger.Info().Str("addr", addr).Msg("starting storefront api")
	if err := server.Start(e, addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
