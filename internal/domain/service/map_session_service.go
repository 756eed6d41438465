package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/helper"
	"RutasVerdes-App/internal/domain/model"
)

// MapSessionService 地図の表示状態（フィルタ・選択・ズーム）を保持し、
// 個別のコマンドでのみ状態を変更する。各コマンドは変更後のMapViewを返す
type MapSessionService interface {
	View(ctx context.Context) (*model.MapView, error)

	SetSearch(ctx context.Context, search string) (*model.MapView, error)
	SetDistanceRange(ctx context.Context, minKm, maxKm float64) (*model.MapView, error)
	SetDifficulty(ctx context.Context, key string, enabled bool) (*model.MapView, error)
	SetFilters(ctx context.Context, filters model.FilterState) (*model.MapView, error)
	ResetFilters(ctx context.Context) (*model.MapView, error)

	SelectRoute(ctx context.Context, routeID string) (*model.MapView, error)
	ClearSelection(ctx context.Context) (*model.MapView, error)

	SetZoom(ctx context.Context, zoom float64) (*model.MapView, error)
}

type mapSessionServiceImpl struct {
	viewService MapViewService
	log         *zap.Logger

	mu        sync.Mutex
	filters   model.FilterState
	selection *Selection
	zoom      float64
}

// NewMapSessionService 初期状態（デフォルトフィルタ・未選択・ズーム8）のセッションを作成
func NewMapSessionService(viewService MapViewService, log *zap.Logger) MapSessionService {
	return &mapSessionServiceImpl{
		viewService: viewService,
		log:         log,
		filters:     model.DefaultFilterState(),
		selection:   NewSelection(),
		zoom:        model.DefaultZoom,
	}
}

func (s *mapSessionServiceImpl) View(ctx context.Context) (*model.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) SetSearch(ctx context.Context, search string) (*model.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Search = search
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) SetDistanceRange(ctx context.Context, minKm, maxKm float64) (*model.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filters.Clone()
	next.MinDistance = minKm
	next.MaxDistance = maxKm
	if err := helper.ValidateFilterState(next); err != nil {
		return nil, err
	}
	s.filters = next
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) SetDifficulty(ctx context.Context, key string, enabled bool) (*model.MapView, error) {
	if _, ok := model.ParseDifficultyKey(key); !ok {
		return nil, &model.ValidationError{Field: "key", Message: "不明な難易度です: " + key}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filters.Clone()
	switch {
	case enabled && !next.HasDifficulty(key):
		next.Difficulties = append(next.Difficulties, key)
	case !enabled:
		kept := make([]string, 0, len(next.Difficulties))
		for _, d := range next.Difficulties {
			if d != key {
				kept = append(kept, d)
			}
		}
		next.Difficulties = kept
	}
	next.Difficulties = helper.UniqueDifficulties(next.Difficulties)
	s.filters = next
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) SetFilters(ctx context.Context, filters model.FilterState) (*model.MapView, error) {
	if err := helper.ValidateFilterState(filters); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := filters.Clone()
	next.Difficulties = helper.UniqueDifficulties(next.Difficulties)
	s.filters = next
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) ResetFilters(ctx context.Context) (*model.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = model.DefaultFilterState()
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) SelectRoute(ctx context.Context, routeID string) (*model.MapView, error) {
	if routeID == "" {
		return nil, &model.ValidationError{Field: "route_id", Message: "ルートIDは必須です"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	route, err := s.viewService.FindRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	s.selection.Select(*route)
	s.log.Info("ルート選択", zap.String("route_id", route.ID), zap.String("name", route.Name))
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) ClearSelection(ctx context.Context) (*model.MapView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Clear()
	return s.buildViewLocked(ctx)
}

func (s *mapSessionServiceImpl) SetZoom(ctx context.Context, zoom float64) (*model.MapView, error) {
	if zoom < 0 {
		return nil, &model.ValidationError{Field: "zoom", Message: "ズームレベルは0以上で指定してください"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.zoom = zoom
	return s.buildViewLocked(ctx)
}

// buildViewLocked は s.mu を保持した状態で呼び出すこと
func (s *mapSessionServiceImpl) buildViewLocked(ctx context.Context) (*model.MapView, error) {
	selectedID, _ := s.selection.SelectedID()
	return s.viewService.BuildView(ctx, model.MapState{
		Filters:         s.filters,
		SelectedRouteID: selectedID,
		Zoom:            s.zoom,
	})
}
