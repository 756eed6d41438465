package model

// SearchRequest 検索テキストの更新
type SearchRequest struct {
	Search string `json:"search"`
}

// DistanceRangeRequest 距離範囲の更新（km）
type DistanceRangeRequest struct {
	MinDistance *float64 `json:"min_distance" binding:"required"`
	MaxDistance *float64 `json:"max_distance" binding:"required"`
}

// DifficultyToggleRequest 難易度チェックボックスの切り替え
type DifficultyToggleRequest struct {
	Key     string `json:"key" binding:"required"`
	Enabled *bool  `json:"enabled" binding:"required"`
}

// SelectRouteRequest ルートマーカーのクリック
type SelectRouteRequest struct {
	RouteID string `json:"route_id" binding:"required"`
}

// ZoomRequest 地図のズーム変更
type ZoomRequest struct {
	Zoom *float64 `json:"zoom" binding:"required"`
}
