package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/model"
)

func TestMapViewService_BuildView(t *testing.T) {
	ctx := context.Background()
	svc := newTestViewService()

	t.Run("描画できないルートは除外される", func(t *testing.T) {
		view, err := svc.BuildView(ctx, model.MapState{Filters: model.DefaultFilterState(), Zoom: model.DefaultZoom})
		require.NoError(t, err)

		assert.Equal(t, []string{"senda.1", "senda.2", "senda.3"}, styledRouteIDs(view))
		require.Len(t, view.Markers, 3)
		assert.Equal(t, model.LatLng{Lat: 40.2791, Lng: -5.1432}, view.Markers[2].Position)
		assert.False(t, view.EmptyResult)
		assert.Nil(t, view.SelectedRouteID)
		assert.Equal(t, model.DefaultCenter, view.Center)
	})

	t.Run("選択中のルートのみ強調される", func(t *testing.T) {
		view, err := svc.BuildView(ctx, model.MapState{
			Filters:         model.DefaultFilterState(),
			SelectedRouteID: "senda.2",
			Zoom:            model.DefaultZoom,
		})
		require.NoError(t, err)

		require.NotNil(t, view.SelectedRouteID)
		assert.Equal(t, "senda.2", *view.SelectedRouteID)
		for _, r := range view.Routes {
			if r.Route.ID == "senda.2" {
				assert.True(t, r.Selected)
				assert.Equal(t, model.RouteStyle{Color: "orange", Weight: 6, Opacity: 1}, r.Style)
			} else {
				assert.False(t, r.Selected)
				assert.Equal(t, 3, r.Style.Weight)
				assert.Equal(t, 0.7, r.Style.Opacity)
			}
		}
	})

	t.Run("選択は表示されるルートに影響しない", func(t *testing.T) {
		without, err := svc.BuildView(ctx, model.MapState{Filters: model.DefaultFilterState(), Zoom: 8})
		require.NoError(t, err)
		with, err := svc.BuildView(ctx, model.MapState{Filters: model.DefaultFilterState(), SelectedRouteID: "senda.1", Zoom: 8})
		require.NoError(t, err)

		assert.Equal(t, styledRouteIDs(without), styledRouteIDs(with))
	})

	t.Run("一致なしは空の結果", func(t *testing.T) {
		filters := model.DefaultFilterState()
		filters.Search = "sendero verde"
		view, err := svc.BuildView(ctx, model.MapState{Filters: filters, Zoom: 8})
		require.NoError(t, err)

		assert.Empty(t, view.Routes)
		assert.True(t, view.EmptyResult)
	})

	t.Run("ズーム閾値以上でのみラベルを表示", func(t *testing.T) {
		below, err := svc.BuildView(ctx, model.MapState{Filters: model.DefaultFilterState(), Zoom: 8})
		require.NoError(t, err)
		assert.False(t, below.LabelsVisible)
		assert.Empty(t, below.Labels)

		above, err := svc.BuildView(ctx, model.MapState{Filters: model.DefaultFilterState(), Zoom: 9})
		require.NoError(t, err)
		assert.True(t, above.LabelsVisible)
		require.Len(t, above.Labels, 2)
		assert.Equal(t, "lugar.valladolid", above.Labels[0].ID)
		assert.Equal(t, "lugar-2", above.Labels[1].ID)
	})

	t.Run("リポジトリのエラーはラップされる", func(t *testing.T) {
		broken := NewMapViewService(&fakeRoutesRepository{err: errRepositoryDown}, &fakePlacesRepository{}, zap.NewNop())
		_, err := broken.BuildView(ctx, model.MapState{Filters: model.DefaultFilterState()})
		assert.True(t, errors.Is(err, errRepositoryDown))
	})
}

func TestMapViewService_FindRoute(t *testing.T) {
	ctx := context.Background()
	svc := newTestViewService()

	t.Run("フィルタとは無関係に検索できる", func(t *testing.T) {
		route, err := svc.FindRoute(ctx, "senda.4")
		require.NoError(t, err)
		assert.Equal(t, "Ruta sin trazado", route.Name)
		assert.Equal(t, model.DifficultyMedium, route.Difficulty)
	})

	t.Run("存在しないIDはErrRouteNotFound", func(t *testing.T) {
		_, err := svc.FindRoute(ctx, "senda.99")
		assert.True(t, errors.Is(err, model.ErrRouteNotFound))
	})
}
