package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError はハンドラがそのまま返せるエラー。
// Err は原因（ログ用、レスポンスには出さない）。
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 原因付き
func WrapHTTPError(status int, message string, err error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// よく使うもの
func errDB(err error) error {
	return WrapHTTPError(http.StatusInternalServerError, "db error", err)
}

func errUpstream(message string, err error) error {
	return WrapHTTPError(http.StatusBadGateway, message, err)
}
