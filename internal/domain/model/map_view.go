package model

// RouteStyle ルート線の描画スタイル
type RouteStyle struct {
	Color   string  `json:"color"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
}

// StyledRoute スタイル付きのルート
type StyledRoute struct {
	Route    Route      `json:"route"`
	Style    RouteStyle `json:"style"`
	Selected bool       `json:"selected"`
}

// RouteMarker ルートの始点マーカー
type RouteMarker struct {
	RouteID  string `json:"route_id"`
	Position LatLng `json:"position"`
}

// PlaceLabel ズームに応じて表示する地名ラベル
type PlaceLabel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position LatLng `json:"position"`
}

// DistanceRange 距離スライダーの範囲（km）
type DistanceRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultDistanceRange スライダーは0〜50km、1km刻み
func DefaultDistanceRange() DistanceRange {
	return DistanceRange{Min: DistanceRangeMinKm, Max: DistanceRangeMaxKm, Step: DistanceRangeStepKm}
}

// MapState 地図の表示状態（フィルタ・選択・ズーム）
type MapState struct {
	Filters         FilterState
	SelectedRouteID string // 空文字は未選択
	Zoom            float64
}

// MapView 描画層に渡す地図の表示内容
type MapView struct {
	Filters         FilterState   `json:"filters"`
	DistanceRange   DistanceRange `json:"distance_range"`
	SelectedRouteID *string       `json:"selected_route_id"`
	Zoom            float64       `json:"zoom"`
	Center          LatLng        `json:"center"`
	LabelsVisible   bool          `json:"labels_visible"`
	Routes          []StyledRoute `json:"routes"`
	Markers         []RouteMarker `json:"markers"`
	Labels          []PlaceLabel  `json:"labels"`
	EmptyResult     bool          `json:"empty_result"`
}
