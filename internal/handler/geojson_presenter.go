package handler

import (
	"github.com/paulmach/orb/geojson"

	"RutasVerdes-App/internal/domain/helper"
	"RutasVerdes-App/internal/domain/model"
)

// toRouteFeatureCollection はスタイル付きルートを描画用のGeoJSONに変換する
// 座標は元データと同じ [lng, lat]、marker のみ描画側の [lat, lng]
func toRouteFeatureCollection(view *model.MapView) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	markers := make(map[string]model.LatLng, len(view.Markers))
	for _, m := range view.Markers {
		markers[m.RouteID] = m.Position
	}

	for _, styled := range view.Routes {
		route := styled.Route
		feature := geojson.NewFeature(route.Geometry)
		feature.ID = route.ID
		feature.Properties = geojson.Properties{
			"id":              route.ID,
			"name":            route.Name,
			"difficulty":      route.Difficulty.Label(),
			"difficulty_key":  route.Difficulty.Key(),
			"difficulty_code": route.DifficultyCode,
			"length":          route.Length,
			"length_text":     helper.FormatDistance(route.Length),
			"duration":        route.Duration,
			"duration_text":   helper.FormatDuration(route.Duration),
			"start_point":     route.StartPoint,
			"color":           styled.Style.Color,
			"weight":          styled.Style.Weight,
			"opacity":         styled.Style.Opacity,
			"selected":        styled.Selected,
		}
		if pos, ok := markers[route.ID]; ok {
			feature.Properties["marker"] = []float64{pos.Lat, pos.Lng}
		}
		fc.Append(feature)
	}

	fc.ExtraMembers = geojson.Properties{
		"count":             len(view.Routes),
		"empty_result":      view.EmptyResult,
		"selected_route_id": view.SelectedRouteID,
	}
	return fc
}
