package helper

import (
	"math"

	"github.com/paulmach/orb"

	"RutasVerdes-App/internal/domain/model"
)

// ToLatLng は GeoJSON の [lng, lat] を描画側の緯度経度に変換する
func ToLatLng(p orb.Point) model.LatLng {
	return model.LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// MarkerPosition はルートの始点（最初の座標）を返す
// LineString / MultiLineString 以外、または座標がない場合は ok=false
func MarkerPosition(g orb.Geometry) (model.LatLng, bool) {
	switch geom := g.(type) {
	case orb.LineString:
		if len(geom) == 0 {
			return model.LatLng{}, false
		}
		return ToLatLng(geom[0]), true
	case orb.MultiLineString:
		if len(geom) == 0 || len(geom[0]) == 0 {
			return model.LatLng{}, false
		}
		return ToLatLng(geom[0][0]), true
	default:
		return model.LatLng{}, false
	}
}

// IsFinitePoint は座標が有限値か判定する
func IsFinitePoint(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DifficultyColor は難易度コードから線の色を決める
func DifficultyColor(code int) string {
	switch code {
	case 1:
		return "green"
	case 2:
		return "orange"
	case 3:
		return "red"
	default:
		return "blue"
	}
}

// RouteStyleFor は選択状態に応じたスタイルを返す
func RouteStyleFor(route model.Route, selected bool) model.RouteStyle {
	style := model.RouteStyle{
		Color:   DifficultyColor(route.DifficultyCode),
		Weight:  3,
		Opacity: 0.7,
	}
	if selected {
		style.Weight = 6
		style.Opacity = 1
	}
	return style
}
