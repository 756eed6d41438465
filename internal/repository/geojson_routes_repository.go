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

// StaticRoutesRepository メモリ上の不変なルートレコード
type StaticRoutesRepository struct {
	records []model.RouteRecord
}

// NewStaticRoutesRepository 既に読み込まれたレコードからリポジトリを作成
func NewStaticRoutesRepository(records []model.RouteRecord) repository.RoutesRepository {
	return &StaticRoutesRepository{records: records}
}

// NewGeoJSONRoutesRepository sendas GeoJSONを一度だけ読み込みリポジトリを作成
func NewGeoJSONRoutesRepository(client *geodata.GeoJSONFileClient, log *zap.Logger) (repository.RoutesRepository, error) {
	features, err := client.ReadFeatures()
	if err != nil {
		return nil, fmt.Errorf("ルートデータの読み込み失敗: %w", err)
	}

	records := make([]model.RouteRecord, len(features))
	skipped := 0
	for i, decoded := range features {
		if decoded.Err != nil {
			skipped++
			log.Warn("不正なルートフィーチャーをスキップ",
				zap.String("path", client.Path()),
				zap.Int("index", i),
				zap.Error(decoded.Err),
			)
			continue
		}
		records[i] = FeatureToRouteRecord(decoded.Feature)
		if _, ok := helper.MarkerPosition(records[i].Geometry); !ok {
			log.Warn("有効なジオメトリのないルート（描画対象外）",
				zap.String("path", client.Path()),
				zap.Int("index", i),
			)
		}
	}

	ids := helper.RouteIDs(records)
	for i, record := range records {
		if record.Properties == nil {
			continue
		}
		if original := helper.RouteID(record, i); original != ids[i] {
			log.Warn("重複したルートIDを置き換え",
				zap.String("path", client.Path()),
				zap.Int("index", i),
				zap.String("id", original),
				zap.String("assigned", ids[i]),
			)
		}
	}

	log.Info("ルートデータ読み込み完了",
		zap.String("path", client.Path()),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return NewStaticRoutesRepository(records), nil
}

func (r *StaticRoutesRepository) GetAll(ctx context.Context) ([]model.RouteRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.records, nil
}

func (r *StaticRoutesRepository) Count() int {
	return len(r.records)
}
