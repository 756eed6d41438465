package repository

import (
	"context"

	"RutasVerdes-App/internal/domain/model"
)

// PlacesRepository 起動時に読み込んだ静的な地名レコードを提供する
type PlacesRepository interface {
	GetAll(ctx context.Context) ([]model.PlaceRecord, error)
	Count() int
}
