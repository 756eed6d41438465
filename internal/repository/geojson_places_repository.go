package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/helper"
	"RutasVerdes-App/internal/domain/model"
	"RutasVerdes-App/internal/domain/repository"
	"RutasVerdes-App/internal/infrastructure/geodata"
)

// StaticPlacesRepository メモリ上の不変な地名レコード
type StaticPlacesRepository struct {
	records []model.PlaceRecord
}

func NewStaticPlacesRepository(records []model.PlaceRecord) repository.PlacesRepository {
	return &StaticPlacesRepository{records: records}
}

// NewGeoJSONPlacesRepository lugares GeoJSONを一度だけ読み込みリポジトリを作成
func NewGeoJSONPlacesRepository(client *geodata.GeoJSONFileClient, log *zap.Logger) (repository.PlacesRepository, error) {
	features, err := client.ReadFeatures()
	if err != nil {
		return nil, fmt.Errorf("地名データの読み込み失敗: %w", err)
	}

	records := make([]model.PlaceRecord, len(features))
	skipped := 0
	for i, decoded := range features {
		if decoded.Err != nil {
			skipped++
			log.Warn("不正な地名フィーチャーをスキップ",
				zap.String("path", client.Path()),
				zap.Int("index", i),
				zap.Error(decoded.Err),
			)
			continue
		}
		records[i] = FeatureToPlaceRecord(decoded.Feature)
		if _, err := helper.ToPlace(records[i], i); err != nil {
			log.Warn("無効な地名（描画対象外）",
				zap.String("path", client.Path()),
				zap.Int("index", i),
				zap.Error(err),
			)
		}
	}

	log.Info("地名データ読み込み完了",
		zap.String("path", client.Path()),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return NewStaticPlacesRepository(records), nil
}

func (r *StaticPlacesRepository) GetAll(ctx context.Context) ([]model.PlaceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.records, nil
}

func (r *StaticPlacesRepository) Count() int {
	return len(r.records)
}
