package handler

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"RutasVerdes-App/internal/domain/helper"
	"RutasVerdes-App/internal/domain/model"
)

// parseFilterQuery はクエリパラメータからフィルタ条件を作成する
// 省略されたパラメータはデフォルト値、difficulty= （空）は難易度の制限なし
func parseFilterQuery(c *gin.Context) (model.FilterState, error) {
	filters := model.DefaultFilterState()
	filters.Search = c.Query("search")

	if v, ok := c.GetQuery("min_km"); ok {
		minKm, err := parseFiniteFloat("min_km", v)
		if err != nil {
			return filters, err
		}
		filters.MinDistance = minKm
	}

	if v, ok := c.GetQuery("max_km"); ok {
		maxKm, err := parseFiniteFloat("max_km", v)
		if err != nil {
			return filters, err
		}
		filters.MaxDistance = maxKm
	}

	if values, ok := c.GetQueryArray("difficulty"); ok {
		difficulties := make([]string, 0, len(values))
		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					difficulties = append(difficulties, part)
				}
			}
		}
		filters.Difficulties = helper.UniqueDifficulties(difficulties)
	}

	return filters, nil
}

// parseZoomQuery はzoomパラメータを読み取る（省略時は初期ズーム）
func parseZoomQuery(c *gin.Context) (float64, error) {
	v, ok := c.GetQuery("zoom")
	if !ok {
		return model.DefaultZoom, nil
	}
	return parseFiniteFloat("zoom", v)
}

func parseFiniteFloat(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &model.ValidationError{Field: field, Message: "数値で指定してください: " + value}
	}
	return f, nil
}
