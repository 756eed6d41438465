package service

import "RutasVerdes-App/internal/domain/model"

// Selection 強調表示するルートの選択状態（最大1件）
// ルートIDは空にならないため、空文字を未選択として扱う
type Selection struct {
	routeID string
}

// NewSelection 未選択状態のSelectionを作成
func NewSelection() *Selection {
	return &Selection{}
}

// Select は無条件にルートを選択する。既存の選択は置き換えられる
func (s *Selection) Select(route model.Route) {
	s.routeID = route.ID
}

// Clear は選択を解除する
func (s *Selection) Clear() {
	s.routeID = ""
}

// SelectedID 選択中のルートID
func (s *Selection) SelectedID() (string, bool) {
	return s.routeID, s.routeID != ""
}

// IsSelected 指定IDのルートが選択中か
func (s *Selection) IsSelected(routeID string) bool {
	return s.routeID != "" && s.routeID == routeID
}
