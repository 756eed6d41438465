package repository

import (
	"context"

	"RutasVerdes-App/internal/domain/model"
)

// RoutesRepository 起動時に読み込んだ静的なルートレコードを提供する
// 返されるスライスはプロセス存続中不変であり、呼び出し側で変更してはならない
type RoutesRepository interface {
	// GetAll データセット内の全レコードを元の順序で取得（位置はID生成に使用される）
	GetAll(ctx context.Context) ([]model.RouteRecord, error)
	Count() int
}
