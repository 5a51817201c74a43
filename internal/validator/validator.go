package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	// 入力が不正
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidShopName = errors.New("invalid shop name")
	ErrMissingFields   = errors.New("all fields are required")
)

// ショップ名の最大長（サフィックス込み）
const MaxShopNameLen = 64

// カラム長と揃える（varchar(n)）
const (
	MaxEmailLen    = 255
	MaxTitleLen    = 255
	MaxFullnameLen = 255
	MaxPhoneLen    = 30
	MaxPincodeLen  = 20
	MaxStateLen    = 100
)

// 長すぎる入力
type FieldTooLongError struct {
	Field string
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s must be at most %d characters", e.Field, e.Max)
}

// CheckLen は文字数（バイトではない）で上限を見る
func CheckLen(field string, v string, max int) error {
	if utf8.RuneCountInString(v) > max {
		return &FieldTooLongError{Field: field, Max: max}
	}
	return nil
}

// "_xxxxxx" の分
const suffixLen = 7

var shopNameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)

// 使えない文字
var shopNameInvalidChars = regexp.MustCompile(`[^a-z0-9._-]`)

// NormalizeEmail はemailを検証して小文字化する。
// 表示名付き（"Alice <a@x.com>"）は不可。
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || utf8.RuneCountInString(email) > MaxEmailLen {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", ErrInvalidEmail
	}

	// ドメイン部にドットが必要
	at := strings.LastIndex(email, "@")
	if at <= 0 || !strings.Contains(email[at+1:], ".") {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(email), nil
}

// BaseShopName はemailのローカル部からショップ名の候補を作る。
func BaseShopName(email string) string {
	local := email
	if at := strings.LastIndex(email, "@"); at >= 0 {
		local = email[:at]
	}
	name := shopNameInvalidChars.ReplaceAllString(strings.ToLower(local), "_")
	// 先頭のドットはS3キーで "." ".." になるので落とす
	name = strings.TrimLeft(name, ".")
	if len(name) > MaxShopNameLen-suffixLen {
		name = name[:MaxShopNameLen-suffixLen]
	}
	if name == "" {
		name = "shop"
	}
	return name
}

// NormalizeShopName は名前変更の入力を検証して小文字化する。
func NormalizeShopName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || len(name) > MaxShopNameLen || !shopNameRe.MatchString(name) {
		return "", ErrInvalidShopName
	}
	// URLのパスで "." ".." にならないように
	if strings.HasPrefix(name, ".") {
		return "", ErrInvalidShopName
	}
	return name, nil
}

// 注文の入力（購入者）
type OrderFields struct {
	Fullname  string
	Phone     string
	Address   string
	Pincode   string
	State     string
	ProductID string
}

// ValidateOrder は全項目の必須チェックと長さチェック。前後の空白は落とす。
func ValidateOrder(in OrderFields) (OrderFields, error) {
	out := OrderFields{
		Fullname:  strings.TrimSpace(in.Fullname),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Pincode:   strings.TrimSpace(in.Pincode),
		State:     strings.TrimSpace(in.State),
		ProductID: strings.TrimSpace(in.ProductID),
	}
	if out.Fullname == "" || out.Phone == "" || out.Address == "" ||
		out.Pincode == "" || out.State == "" || out.ProductID == "" {
		return OrderFields{}, ErrMissingFields
	}

	limits := []struct {
		field string
		v     string
		max   int
	}{
		{"fullname", out.Fullname, MaxFullnameLen},
		{"phone", out.Phone, MaxPhoneLen},
		{"pincode", out.Pincode, MaxPincodeLen},
		{"state", out.State, MaxStateLen},
	}
	for _, l := range limits {
		if err := CheckLen(l.field, l.v, l.max); err != nil {
			return OrderFields{}, err
		}
	}
	return out, nil
}

// IsUUID はIDの形式チェック（DBに投げる前）
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
