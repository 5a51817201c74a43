package repository

import "errors"

// 見つからないを統一
var ErrNotFound = errors.New("not found")

// 一意制約違反（どの制約かで分ける）
var (
	ErrShopNameTaken = errors.New("shop name already taken")
	ErrEmailTaken    = errors.New("email already registered")
)
