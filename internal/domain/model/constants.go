package model

import "encoding/json"

// Difficulty はルートの難易度を表す
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// DifficultyKey はフィルタで使用する難易度のワイヤ表現（小文字・アクセント付き）
const (
	DifficultyKeyEasy   = "fácil"
	DifficultyKeyMedium = "media"
	DifficultyKeyHard   = "difícil"
)

// 地図表示に関する定数
const (
	// LabelVisibilityZoomThreshold 地名ラベルを表示する最小ズームレベル
	LabelVisibilityZoomThreshold = 9.0
	DefaultZoom                  = 8.0

	DistanceRangeMinKm   = 0.0
	DistanceRangeMaxKm   = 50.0
	DistanceRangeStepKm  = 1.0
	DefaultMaxDistanceKm = 30.0
)

// DefaultCenter 初期表示の地図中心（カスティーリャ・イ・レオン）
var DefaultCenter = LatLng{Lat: 41.6, Lng: -4.7}

// 正規化で使用するプレースホルダー
const (
	UnnamedRouteName       = "Ruta sin nombre"
	GeneratedRouteIDPrefix = "generated-route-"
	GeneratedPlaceIDPrefix = "lugar-"
)

// DifficultyLabelMap は難易度から表示名へのマッピング
var DifficultyLabelMap = map[Difficulty]string{
	DifficultyEasy:   "Fácil",
	DifficultyMedium: "Media",
	DifficultyHard:   "Difícil",
}

// DifficultyKeyMap はワイヤ表現から難易度へのマッピング
var DifficultyKeyMap = map[string]Difficulty{
	DifficultyKeyEasy:   DifficultyEasy,
	DifficultyKeyMedium: DifficultyMedium,
	DifficultyKeyHard:   DifficultyHard,
}

// Label は難易度の表示名を返す（不明な値はMedia）
func (d Difficulty) Label() string {
	if label, ok := DifficultyLabelMap[d]; ok {
		return label
	}
	return DifficultyLabelMap[DifficultyMedium]
}

// Key は難易度のワイヤ表現を返す
func (d Difficulty) Key() string {
	switch d {
	case DifficultyEasy:
		return DifficultyKeyEasy
	case DifficultyHard:
		return DifficultyKeyHard
	default:
		return DifficultyKeyMedium
	}
}

func (d Difficulty) String() string {
	return d.Label()
}

// MarshalJSON は表示名として出力する
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Label())
}

// ParseDifficultyKey はワイヤ表現から難易度を取得する
func ParseDifficultyKey(key string) (Difficulty, bool) {
	d, ok := DifficultyKeyMap[key]
	return d, ok
}

// GetAllDifficultyKeys は全難易度のワイヤ表現を易しい順に取得する
func GetAllDifficultyKeys() []string {
	return []string{
		DifficultyKeyEasy,
		DifficultyKeyMedium,
		DifficultyKeyHard,
	}
}
