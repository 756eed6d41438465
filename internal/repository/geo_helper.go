package repository

import (
	"github.com/paulmach/orb/geojson"

	"RutasVerdes-App/internal/domain/model"
)

// FeatureToRouteRecord orbのフィーチャーを生のルートレコードに変換
// nil の場合はプロパティなしのレコードとして位置だけを保持する
func FeatureToRouteRecord(feature *geojson.Feature) model.RouteRecord {
	if feature == nil {
		return model.RouteRecord{}
	}
	return model.RouteRecord{
		Properties: feature.Properties,
		Geometry:   feature.Geometry,
	}
}

// FeatureToPlaceRecord orbのフィーチャーを生の地名レコードに変換
func FeatureToPlaceRecord(feature *geojson.Feature) model.PlaceRecord {
	if feature == nil {
		return model.PlaceRecord{}
	}
	return model.PlaceRecord{
		Properties: feature.Properties,
		Geometry:   feature.Geometry,
	}
}
