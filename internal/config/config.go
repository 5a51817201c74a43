package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret string // JWT署名シークレット

	BucketName      string // S3バケット
	BucketRegion    string
	AccessKey       string // 空ならデフォルトの認証チェーン
	SecretAccessKey string
	S3Endpoint      string // MinIO/localstack用（path-style）
	CDNDomain       string // 公開URLのドメイン（CloudFront）

	GoEnv     string   // dev/prod
	LogLevel  string   // debug/info/warn/error
	FEOrigins []string // CORS許可オリジン
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "storefront"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		BucketName:      os.Getenv("BUCKET_NAME"),
		BucketRegion:    os.Getenv("BUCKET_REGION"),
		AccessKey:       os.Getenv("ACCESS_KEY"),
		SecretAccessKey: os.Getenv("SECRET_ACCESS_KEY"),
		S3Endpoint:      strings.TrimRight(os.Getenv("S3_ENDPOINT"), "/"),
		CDNDomain:       strings.Trim(os.Getenv("CLOUDFRONT_DISTRIBUTION_DOMAIN"), "/"),

		GoEnv:     getenv("GO_ENV", "prod"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		FEOrigins: splitList(getenv("FE_URL", "*")),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.BucketName == "" {
		return Config{}, fmt.Errorf("BUCKET_NAME is required")
	}
	if cfg.BucketRegion == "" {
		return Config{}, fmt.Errorf("BUCKET_REGION is required")
	}
	//キーは両方そろっているか両方空
	if (cfg.AccessKey == "") != (cfg.SecretAccessKey == "") {
		return Config{}, fmt.Errorf("ACCESS_KEY and SECRET_ACCESS_KEY must be set together")
	}

	return cfg, nil
}

// DSNはgorm/pgx用の接続文字列
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// Addrは ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsDev() bool {
	return c.GoEnv == "dev"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
