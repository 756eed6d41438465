package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/helper"
	"RutasVerdes-App/internal/domain/model"
	"RutasVerdes-App/internal/domain/repository"
)

// MapViewService 静的データと表示状態から地図の表示内容を組み立てる
type MapViewService interface {
	// FilterRoutes 全ルートを正規化しフィルタに一致するものを入力順で返す
	FilterRoutes(ctx context.Context, filters model.FilterState) ([]model.Route, error)

	// BuildView 表示状態から描画用のMapViewを組み立てる
	BuildView(ctx context.Context, state model.MapState) (*model.MapView, error)

	// FindRoute IDでルートを検索（フィルタとは無関係にデータセット全体から）
	FindRoute(ctx context.Context, routeID string) (*model.Route, error)

	// PlaceLabels ズームレベルに応じた地名ラベルを返す（閾値未満は空）
	PlaceLabels(ctx context.Context, zoom float64) ([]model.PlaceLabel, error)
}

type mapViewServiceImpl struct {
	routesRepo repository.RoutesRepository
	placesRepo repository.PlacesRepository
	log        *zap.Logger
}

// NewMapViewService 新しいMapViewServiceを作成
func NewMapViewService(routesRepo repository.RoutesRepository, placesRepo repository.PlacesRepository, log *zap.Logger) MapViewService {
	return &mapViewServiceImpl{
		routesRepo: routesRepo,
		placesRepo: placesRepo,
		log:        log,
	}
}

func (s *mapViewServiceImpl) FilterRoutes(ctx context.Context, filters model.FilterState) ([]model.Route, error) {
	raws, err := s.routesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ルートデータの取得失敗: %w", err)
	}
	return helper.FilterRoutes(raws, filters), nil
}

func (s *mapViewServiceImpl) BuildView(ctx context.Context, state model.MapState) (*model.MapView, error) {
	routes, err := s.FilterRoutes(ctx, state.Filters)
	if err != nil {
		return nil, err
	}

	view := &model.MapView{
		Filters:       state.Filters.Clone(),
		DistanceRange: model.DefaultDistanceRange(),
		Zoom:          state.Zoom,
		Center:        model.DefaultCenter,
		LabelsVisible: helper.LabelsVisible(state.Zoom),
		Routes:        make([]model.StyledRoute, 0, len(routes)),
		Markers:       make([]model.RouteMarker, 0, len(routes)),
		Labels:        []model.PlaceLabel{},
	}
	if state.SelectedRouteID != "" {
		selectedID := state.SelectedRouteID
		view.SelectedRouteID = &selectedID
	}

	for _, route := range routes {
		position, ok := helper.MarkerPosition(route.Geometry)
		if !ok {
			// 描画できないルートは除外する
			s.log.Debug("描画可能なジオメトリがないルートを除外", zap.String("route_id", route.ID))
			continue
		}

		selected := state.SelectedRouteID != "" && route.ID == state.SelectedRouteID
		view.Routes = append(view.Routes, model.StyledRoute{
			Route:    route,
			Style:    helper.RouteStyleFor(route, selected),
			Selected: selected,
		})
		view.Markers = append(view.Markers, model.RouteMarker{
			RouteID:  route.ID,
			Position: position,
		})
	}
	view.EmptyResult = len(view.Routes) == 0

	labels, err := s.PlaceLabels(ctx, state.Zoom)
	if err != nil {
		return nil, err
	}
	view.Labels = labels

	return view, nil
}

func (s *mapViewServiceImpl) FindRoute(ctx context.Context, routeID string) (*model.Route, error) {
	raws, err := s.routesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ルートデータの取得失敗: %w", err)
	}

	for _, route := range helper.NormalizeRoutes(raws) {
		if route.ID == routeID {
			return &route, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrRouteNotFound, routeID)
}

func (s *mapViewServiceImpl) PlaceLabels(ctx context.Context, zoom float64) ([]model.PlaceLabel, error) {
	labels := []model.PlaceLabel{}
	if !helper.LabelsVisible(zoom) {
		return labels, nil
	}

	raws, err := s.placesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("地名データの取得失敗: %w", err)
	}

	for i, raw := range raws {
		place, err := helper.ToPlace(raw, i)
		if err != nil {
			continue
		}
		labels = append(labels, model.PlaceLabel{
			ID:       place.ID,
			Name:     place.Name,
			Position: place.Location,
		})
	}
	return labels, nil
}
