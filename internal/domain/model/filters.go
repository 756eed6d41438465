package model

// FilterState ユーザーが選択したフィルタ条件
// Difficulties が空の場合は難易度による絞り込みを行わない
type FilterState struct {
	Search       string   `json:"search"`
	MinDistance  float64  `json:"min_distance"` // km
	MaxDistance  float64  `json:"max_distance"` // km
	Difficulties []string `json:"difficulties"` // ワイヤ表現（fácil, media, difícil）
}

// DefaultFilterState 初期フィルタ（全難易度・0〜30km）
func DefaultFilterState() FilterState {
	return FilterState{
		Search:       "",
		MinDistance:  DistanceRangeMinKm,
		MaxDistance:  DefaultMaxDistanceKm,
		Difficulties: GetAllDifficultyKeys(),
	}
}

// HasDifficulty 指定の難易度キーが含まれるか
func (f FilterState) HasDifficulty(key string) bool {
	for _, d := range f.Difficulties {
		if d == key {
			return true
		}
	}
	return false
}

// Clone スライスを含めてコピーする
// 未指定（nil）の難易度は空集合として扱い、常に空でないスライスを返す
func (f FilterState) Clone() FilterState {
	clone := f
	clone.Difficulties = make([]string, len(f.Difficulties))
	copy(clone.Difficulties, f.Difficulties)
	return clone
}
