package model

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// sendas GeoJSON のプロパティキー
const (
	RoutePropID         = "gml_id"
	RoutePropName       = "equip_b_nombre"
	RoutePropDifficulty = "senda_dificultad"
	RoutePropLength     = "senda_longitud"
	RoutePropStartPoint = "startPoint"
	RoutePropDuration   = "senda_tiempo_recorrido"
)

// RouteRecord 静的GeoJSONから読み込んだ生のルートレコード
// Properties が nil の場合はプロパティなしのレコードとして扱う
type RouteRecord struct {
	Properties geojson.Properties
	Geometry   orb.Geometry // LineString or MultiLineString, [lng, lat]
}

// Route 正規化されたルート
type Route struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Difficulty     Difficulty   `json:"difficulty"`
	DifficultyCode int          `json:"difficulty_code"` // 1〜3以外は0
	Length         float64      `json:"length"`          // メートル
	StartPoint     string       `json:"start_point"`
	Duration       string       `json:"duration"` // 分（生の文字列）
	Geometry       orb.Geometry `json:"-"`
}

// LengthKm 距離をキロメートルで返す
func (r *Route) LengthKm() float64 {
	return r.Length / 1000
}

// RouteDetail ルートのポップアップ表示用の詳細
type RouteDetail struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Difficulty     string  `json:"difficulty"`
	DifficultyKey  string  `json:"difficulty_key"`
	LengthMeters   float64 `json:"length_meters"`
	LengthText     string  `json:"length_text"`
	Duration       string  `json:"duration"`
	DurationText   string  `json:"duration_text"`
	StartPoint     string  `json:"start_point"`
	MarkerPosition *LatLng `json:"marker_position"` // 描画できないジオメトリの場合はnull
}
