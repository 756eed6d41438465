package model

import "errors"

// ErrRouteNotFound 指定IDのルートがデータセットに存在しない
var ErrRouteNotFound = errors.New("ルートが見つかりません")

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
