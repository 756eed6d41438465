package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/helper"
	"RutasVerdes-App/internal/domain/model"
	"RutasVerdes-App/internal/domain/service"
)

// RouteQueryUseCase 状態を持たないルート・地名の問い合わせ
// フィルタと選択はリクエストごとに明示的に渡される
type RouteQueryUseCase interface {
	// ListRoutes フィルタに一致するルートをスタイル付きで返す
	ListRoutes(ctx context.Context, filters model.FilterState, selectedRouteID string) (*model.MapView, error)

	// GetRouteDetail ポップアップ表示用のルート詳細を返す
	GetRouteDetail(ctx context.Context, routeID string) (*model.RouteDetail, error)

	// ListPlaceLabels ズームレベルに応じた地名ラベルを返す
	ListPlaceLabels(ctx context.Context, zoom float64) ([]model.PlaceLabel, error)
}

type routeQueryUseCaseImpl struct {
	viewService service.MapViewService
	log         *zap.Logger
}

// NewRouteQueryUseCase 新しいRouteQueryUseCaseを作成
func NewRouteQueryUseCase(viewService service.MapViewService, log *zap.Logger) RouteQueryUseCase {
	return &routeQueryUseCaseImpl{
		viewService: viewService,
		log:         log,
	}
}

func (u *routeQueryUseCaseImpl) ListRoutes(ctx context.Context, filters model.FilterState, selectedRouteID string) (*model.MapView, error) {
	if err := helper.ValidateFilterState(filters); err != nil {
		return nil, err
	}

	view, err := u.viewService.BuildView(ctx, model.MapState{
		Filters:         filters,
		SelectedRouteID: selectedRouteID,
		Zoom:            model.DefaultZoom,
	})
	if err != nil {
		return nil, fmt.Errorf("ルート一覧の作成に失敗: %w", err)
	}

	u.log.Debug("ルート一覧",
		zap.String("search", filters.Search),
		zap.Float64("min_km", filters.MinDistance),
		zap.Float64("max_km", filters.MaxDistance),
		zap.Strings("difficulties", filters.Difficulties),
		zap.Int("matched", len(view.Routes)),
	)
	return view, nil
}

func (u *routeQueryUseCaseImpl) GetRouteDetail(ctx context.Context, routeID string) (*model.RouteDetail, error) {
	route, err := u.viewService.FindRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	detail := &model.RouteDetail{
		ID:            route.ID,
		Name:          route.Name,
		Difficulty:    route.Difficulty.Label(),
		DifficultyKey: route.Difficulty.Key(),
		LengthMeters:  route.Length,
		LengthText:    helper.FormatDistance(route.Length),
		Duration:      route.Duration,
		DurationText:  helper.FormatDuration(route.Duration),
		StartPoint:    route.StartPoint,
	}
	if position, ok := helper.MarkerPosition(route.Geometry); ok {
		detail.MarkerPosition = &position
	}
	return detail, nil
}

func (u *routeQueryUseCaseImpl) ListPlaceLabels(ctx context.Context, zoom float64) ([]model.PlaceLabel, error) {
	if zoom < 0 {
		return nil, &model.ValidationError{Field: "zoom", Message: "ズームレベルは0以上で指定してください"}
	}
	return u.viewService.PlaceLabels(ctx, zoom)
}
