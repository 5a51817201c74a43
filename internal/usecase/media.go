package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// アップロード上限（15MB）
const MaxImageSize int64 = 15 * 1024 * 1024

// ハンドラから渡される画像
type ImageUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
}

// 画像のみ・15MB以下
func (img *ImageUpload) Validate() error {
	if img.Size > MaxImageSize {
		return NewHTTPError(http.StatusBadRequest, "try to upload a file sized less than 15 MB")
	}
	if !strings.HasPrefix(strings.ToLower(img.ContentType), "image/") {
		return NewHTTPError(http.StatusBadRequest, "invalid file type, only images are allowed")
	}
	return nil
}

// 商品画像とプロフィール画像で共通のアップロード処理
type mediaStore struct {
	storage ObjectStorage
	idGen   IDGenerator
}

// キーは "<shopName>/<kind>-<id>"
func (m mediaStore) upload(ctx context.Context, shopName string, kind string, img *ImageUpload) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", shopName, kind, m.idGen.NewID())
	url, err := m.storage.Put(ctx, key, img.Body, img.Size, img.ContentType)
	if err != nil {
		return "", errUpstream("failed to upload file", err)
	}
	return url, nil
}
