package usecase

import (
	"context"
	"io"
	"time"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// セッショントークンを発行する約束
type TokenIssuer interface {
	Issue(shopID string, now time.Time) (string, error)
}

// 画像の保存先（S3など）
type ObjectStorage interface {
	// 保存して公開URLを返す
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// 自分が発行したURLならキーを返す
	KeyFromURL(rawURL string) (string, bool)
}
