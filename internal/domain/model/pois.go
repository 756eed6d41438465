package model

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// lugares GeoJSON のプロパティキー
const (
	PlacePropID   = "id"
	PlacePropName = "name"
)

// LatLng 緯度経度を表す基本的な型（地図描画側の座標順）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceRecord 静的GeoJSONから読み込んだ生の地名レコード
type PlaceRecord struct {
	Properties geojson.Properties
	Geometry   orb.Geometry // Point, [lng, lat]
}

// Place 描画可能な地名
type Place struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location LatLng `json:"location"`
}
