package helper

import (
	"errors"
	"strconv"

	"github.com/paulmach/orb"

	"RutasVerdes-App/internal/domain/model"
)

var (
	errPlaceNotPoint     = errors.New("geometry is not a Point")
	errPlaceNotFinite    = errors.New("coordinates are not finite")
	errPlaceMissingName  = errors.New("name is missing")
	errPlaceNoProperties = errors.New("properties are missing")
)

// LabelsVisible はズームレベルが閾値以上のときのみ地名ラベルを表示する
func LabelsVisible(zoom float64) bool {
	return zoom >= model.LabelVisibilityZoomThreshold
}

// ToPlace は地名レコードを描画可能な Place に変換する
// 無効なレコードは理由付きのエラーを返す（呼び出し側で除外する）
func ToPlace(raw model.PlaceRecord, index int) (model.Place, error) {
	if raw.Properties == nil {
		return model.Place{}, errPlaceNoProperties
	}
	point, ok := raw.Geometry.(orb.Point)
	if !ok {
		return model.Place{}, errPlaceNotPoint
	}
	if !IsFinitePoint(point) {
		return model.Place{}, errPlaceNotFinite
	}
	name, ok := PropertyString(raw.Properties, model.PlacePropName)
	if !ok {
		return model.Place{}, errPlaceMissingName
	}

	id, ok := PropertyString(raw.Properties, model.PlacePropID)
	if !ok {
		id = model.GeneratedPlaceIDPrefix + strconv.Itoa(index)
	}

	return model.Place{
		ID:       id,
		Name:     name,
		Location: ToLatLng(point),
	}, nil
}
