package helper

import (
	"math"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

// PropertyString はプロパティを文字列として取得する
// 数値は文字列に変換し、空文字・未設定・その他の型は ok=false
func PropertyString(props geojson.Properties, key string) (string, bool) {
	switch v := props[key].(type) {
	case string:
		return v, v != ""
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return "", false
	}
}

// PropertyNumber はプロパティを有限の数値として取得する（文字列は受け付けない）
func PropertyNumber(props geojson.Properties, key string) (float64, bool) {
	switch v := props[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
