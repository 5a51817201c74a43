package handler

import (
	"errors"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 画像のフィールド名（クライアントによって違う）
var imageFields = []string{"image", "file"}

var errBadMultipart = errors.New("invalid multipart form")

// imageFromForm はmultipartから画像を1つ取り出す。
// ファイルがなければ nil。closeは必ず呼ぶこと。
func imageFromForm(c echo.Context) (*usecase.ImageUpload, func(), error) {
	noop := func() {}

	for _, field := range imageFields {
		fh, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		if err != nil {
			return nil, noop, errBadMultipart
		}

		f, err := fh.Open()
		if err != nil {
			return nil, noop, errBadMultipart
		}
		return &usecase.ImageUpload{
			Body:        f,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		}, func() { _ = f.Close() }, nil
	}
	return nil, noop, nil
}
