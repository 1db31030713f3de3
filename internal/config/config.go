package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	GoEnv    string // dev/prod
	LogLevel string // zerologのレベル（debug/info/warn/error）
}

// Loadは環境変数から設定を読む。デモなのでdev向けの既定値を持つ。
func Load() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),
		GoEnv:     getenv("GO_ENV", "dev"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}

	//prodでは既定シークレットを許さない
	if cfg.GoEnv == "prod" && cfg.JWTSecret == "dev_secret_change_me" {
		return Config{}, fmt.Errorf("JWT_SECRET is required in prod")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
