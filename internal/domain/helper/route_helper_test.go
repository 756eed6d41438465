package helper

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"

	"RutasVerdes-App/internal/domain/model"
)

var testLine = orb.LineString{{-4.7245, 41.6523}, {-4.7281, 41.6549}}

func routeRecord(props geojson.Properties) model.RouteRecord {
	return model.RouteRecord{Properties: props, Geometry: testLine}
}

func TestNormalizeRoute(t *testing.T) {
	t.Run("全項目あり", func(t *testing.T) {
		raw := routeRecord(geojson.Properties{
			model.RoutePropID:         "senda.1",
			model.RoutePropName:       "Senda del Cañón",
			model.RoutePropDifficulty: 3.0,
			model.RoutePropLength:     5400.0,
			model.RoutePropStartPoint: "Ermita",
			model.RoutePropDuration:   "95",
		})

		route := NormalizeRoute(raw, 0)

		assert.Equal(t, "senda.1", route.ID)
		assert.Equal(t, "Senda del Cañón", route.Name)
		assert.Equal(t, model.DifficultyHard, route.Difficulty)
		assert.Equal(t, 3, route.DifficultyCode)
		assert.Equal(t, 5400.0, route.Length)
		assert.Equal(t, "Ermita", route.StartPoint)
		assert.Equal(t, "95", route.Duration)
		assert.Equal(t, testLine, route.Geometry)
	})

	t.Run("欠損値はデフォルトになる", func(t *testing.T) {
		route := NormalizeRoute(model.RouteRecord{Properties: geojson.Properties{}}, 7)

		assert.Equal(t, "generated-route-7", route.ID)
		assert.Equal(t, model.UnnamedRouteName, route.Name)
		assert.Equal(t, model.DifficultyMedium, route.Difficulty)
		assert.Equal(t, 0, route.DifficultyCode)
		assert.Equal(t, 0.0, route.Length)
		assert.Equal(t, "", route.StartPoint)
		assert.Equal(t, "", route.Duration)
		assert.Nil(t, route.Geometry)
	})

	t.Run("プロパティがnilでも失敗しない", func(t *testing.T) {
		assert.NotPanics(t, func() {
			route := NormalizeRoute(model.RouteRecord{}, 2)
			assert.Equal(t, "generated-route-2", route.ID)
		})
	})

	t.Run("数値のgml_idは文字列化される", func(t *testing.T) {
		route := NormalizeRoute(routeRecord(geojson.Properties{model.RoutePropID: 1234.0}), 0)
		assert.Equal(t, "1234", route.ID)
	})

	t.Run("空文字や0のgml_idは位置から生成", func(t *testing.T) {
		assert.Equal(t, "generated-route-3", NormalizeRoute(routeRecord(geojson.Properties{model.RoutePropID: ""}), 3).ID)
		assert.Equal(t, "generated-route-4", NormalizeRoute(routeRecord(geojson.Properties{model.RoutePropID: 0.0}), 4).ID)
	})

	t.Run("負の距離は0に丸める", func(t *testing.T) {
		route := NormalizeRoute(routeRecord(geojson.Properties{model.RoutePropLength: -50.0}), 0)
		assert.Equal(t, 0.0, route.Length)
	})

	t.Run("数値の所要時間は文字列化される", func(t *testing.T) {
		route := NormalizeRoute(routeRecord(geojson.Properties{model.RoutePropDuration: 120.0}), 0)
		assert.Equal(t, "120", route.Duration)
	})
}

func TestNormalizeRoute_Difficulty(t *testing.T) {
	cases := []struct {
		name     string
		value    interface{}
		expected model.Difficulty
		code     int
	}{
		{"1はFácil", 1.0, model.DifficultyEasy, 1},
		{"2はMedia", 2.0, model.DifficultyMedium, 2},
		{"3はDifícil", 3.0, model.DifficultyHard, 3},
		{"範囲外はMedia", 4.0, model.DifficultyMedium, 0},
		{"0はMedia", 0.0, model.DifficultyMedium, 0},
		{"小数はMedia", 2.5, model.DifficultyMedium, 0},
		{"文字列は受け付けない", "3", model.DifficultyMedium, 0},
		{"nullはMedia", nil, model.DifficultyMedium, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route := NormalizeRoute(routeRecord(geojson.Properties{model.RoutePropDifficulty: tc.value}), 0)
			assert.Equal(t, tc.expected, route.Difficulty)
			assert.Equal(t, tc.code, route.DifficultyCode)
		})
	}
}

func TestNormalizeRoute_Totality(t *testing.T) {
	weird := []geojson.Properties{
		nil,
		{},
		{model.RoutePropName: 42.0, model.RoutePropLength: "long", model.RoutePropDifficulty: true},
		{model.RoutePropID: []interface{}{"a"}, model.RoutePropDuration: map[string]interface{}{}},
		{model.RoutePropLength: -1.0, model.RoutePropDifficulty: -3.0},
	}

	for i, props := range weird {
		route := NormalizeRoute(model.RouteRecord{Properties: props}, i)

		assert.NotEmpty(t, route.ID)
		assert.Contains(t, []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}, route.Difficulty)
		assert.GreaterOrEqual(t, route.Length, 0.0)
	}
}
