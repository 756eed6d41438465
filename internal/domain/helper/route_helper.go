package helper

import (
	"strconv"

	"github.com/paulmach/orb/geojson"

	"RutasVerdes-App/internal/domain/model"
)

// NormalizeRoute は生のルートレコードを正規化する
// 欠損値はすべてデフォルトに置き換え、失敗することはない
func NormalizeRoute(raw model.RouteRecord, index int) model.Route {
	props := raw.Properties

	code := DifficultyCode(props)

	length, ok := PropertyNumber(props, model.RoutePropLength)
	if !ok || length < 0 {
		length = 0
	}

	name, ok := PropertyString(props, model.RoutePropName)
	if !ok {
		name = model.UnnamedRouteName
	}

	startPoint, _ := PropertyString(props, model.RoutePropStartPoint)
	duration, _ := PropertyString(props, model.RoutePropDuration)

	return model.Route{
		ID:             RouteID(raw, index),
		Name:           name,
		Difficulty:     DifficultyFromCode(code),
		DifficultyCode: code,
		Length:         length,
		StartPoint:     startPoint,
		Duration:       duration,
		Geometry:       raw.Geometry,
	}
}

// RouteID はgml_idがあればそれを、なければデータセット内の位置からIDを生成する
func RouteID(raw model.RouteRecord, index int) string {
	if v, ok := raw.Properties[model.RoutePropID].(float64); ok && v == 0 {
		// 数値の0は未設定扱い
		return model.GeneratedRouteIDPrefix + strconv.Itoa(index)
	}
	if id, ok := PropertyString(raw.Properties, model.RoutePropID); ok {
		return id
	}
	return model.GeneratedRouteIDPrefix + strconv.Itoa(index)
}

// RouteIDs はデータセット全体でルートIDを一意に割り当てる
// 重複したIDは最初の出現だけが保持し、以降は "<id>-<位置>" になる。プロパティのないレコードは空文字
func RouteIDs(raws []model.RouteRecord) []string {
	ids := make([]string, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for i, raw := range raws {
		if raw.Properties == nil {
			continue
		}
		id := RouteID(raw, i)
		for {
			if _, dup := seen[id]; !dup {
				break
			}
			id = id + "-" + strconv.Itoa(i)
		}
		seen[id] = struct{}{}
		ids[i] = id
	}
	return ids
}

// NormalizeRoutes はデータセット全体を入力順に正規化する（プロパティのないレコードは除く）
// IDは RouteIDs で一意化されるため、フィルタ条件によらず同じルートは同じIDになる
func NormalizeRoutes(raws []model.RouteRecord) []model.Route {
	ids := RouteIDs(raws)
	routes := make([]model.Route, 0, len(raws))
	for i, raw := range raws {
		if raw.Properties == nil {
			continue
		}
		route := NormalizeRoute(raw, i)
		route.ID = ids[i]
		routes = append(routes, route)
	}
	return routes
}

// DifficultyCode は senda_dificultad が 1〜3 の数値ならその値を、それ以外は0を返す
func DifficultyCode(props geojson.Properties) int {
	v, ok := PropertyNumber(props, model.RoutePropDifficulty)
	if !ok {
		return 0
	}
	switch v {
	case 1, 2, 3:
		return int(v)
	default:
		return 0
	}
}

// DifficultyFromCode は難易度コードを難易度に変換する（1→Fácil, 2→Media, 3→Difícil, その他→Media）
func DifficultyFromCode(code int) model.Difficulty {
	switch code {
	case 1:
		return model.DifficultyEasy
	case 3:
		return model.DifficultyHard
	default:
		return model.DifficultyMedium
	}
}
