package helper

import (
	"strings"

	"RutasVerdes-App/internal/domain/model"
)

// MatchesFilters はルートがフィルタ条件をすべて満たすか判定する
func MatchesFilters(route model.Route, filters model.FilterState) bool {
	return matchesName(route, filters.Search) &&
		matchesDifficulty(route, filters.Difficulties) &&
		matchesDistance(route, filters.MinDistance, filters.MaxDistance)
}

// 大文字小文字を区別しない部分一致
func matchesName(route model.Route, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(route.Name), strings.ToLower(search))
}

// 空集合は全難易度を許可する
func matchesDifficulty(route model.Route, difficulties []string) bool {
	if len(difficulties) == 0 {
		return true
	}
	key := route.Difficulty.Key()
	for _, d := range difficulties {
		if d == key {
			return true
		}
	}
	return false
}

// 両端を含む。min > max の場合は何もマッチしない
func matchesDistance(route model.Route, minKm, maxKm float64) bool {
	lengthKm := route.LengthKm()
	return lengthKm >= minKm && lengthKm <= maxKm
}

// FilterRoutes は全レコードを正規化し、フィルタに一致するものを入力順のまま返す
// プロパティのないレコードはスキップするが、位置（ID生成用のインデックス）は消費する
func FilterRoutes(raws []model.RouteRecord, filters model.FilterState) []model.Route {
	filtered := make([]model.Route, 0, len(raws))
	for _, route := range NormalizeRoutes(raws) {
		if MatchesFilters(route, filters) {
			filtered = append(filtered, route)
		}
	}
	return filtered
}

// ValidateFilterState はフィルタ条件の不変条件を検証する
func ValidateFilterState(filters model.FilterState) error {
	if filters.MinDistance < 0 {
		return &model.ValidationError{Field: "min_distance", Message: "最小距離は0以上で指定してください"}
	}
	if filters.MinDistance > filters.MaxDistance {
		return &model.ValidationError{Field: "max_distance", Message: "最大距離は最小距離以上で指定してください"}
	}
	for _, d := range filters.Difficulties {
		if _, ok := model.ParseDifficultyKey(d); !ok {
			return &model.ValidationError{Field: "difficulties", Message: "不明な難易度です: " + d}
		}
	}
	return nil
}

// UniqueDifficulties は重複を除いた難易度キーを出現順で返す
func UniqueDifficulties(difficulties []string) []string {
	seen := make(map[string]struct{}, len(difficulties))
	unique := make([]string, 0, len(difficulties))
	for _, d := range difficulties {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}
