package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/model"
	"RutasVerdes-App/internal/domain/service"
)

// MapSessionHandler 地図セッション（フィルタ・選択・ズーム）のハンドラー
// 各エンドポイントは1つのユーザー操作に対応し、更新後のMapViewを返す
type MapSessionHandler struct {
	session service.MapSessionService
	log     *zap.Logger
}

// NewMapSessionHandler は新しいMapSessionHandlerインスタンスを作成
func NewMapSessionHandler(session service.MapSessionService, log *zap.Logger) *MapSessionHandler {
	return &MapSessionHandler{
		session: session,
		log:     log,
	}
}

// RegisterRoutes はエンドポイントを登録する
func (h *MapSessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	m := rg.Group("/map")
	{
		m.GET("/view", h.GetView)
		m.PUT("/filters", h.PutFilters)
		m.POST("/filters/reset", h.ResetFilters)
		m.PUT("/filters/search", h.PutSearch)
		m.PUT("/filters/distance", h.PutDistanceRange)
		m.PUT("/filters/difficulty", h.PutDifficulty)
		m.POST("/selection", h.PostSelection)
		m.DELETE("/selection", h.DeleteSelection)
		m.PUT("/zoom", h.PutZoom)
	}
}

// GetView GET /map/view - 現在の表示内容
func (h *MapSessionHandler) GetView(c *gin.Context) {
	view, err := h.session.View(c.Request.Context())
	h.respond(c, view, err)
}

// PutFilters PUT /map/filters - フィルタ全体を置き換える
func (h *MapSessionHandler) PutFilters(c *gin.Context) {
	var req model.FilterState
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.session.SetFilters(c.Request.Context(), req)
	h.respond(c, view, err)
}

// ResetFilters POST /map/filters/reset - 初期フィルタに戻す
func (h *MapSessionHandler) ResetFilters(c *gin.Context) {
	view, err := h.session.ResetFilters(c.Request.Context())
	h.respond(c, view, err)
}

// PutSearch PUT /map/filters/search - 検索テキスト
func (h *MapSessionHandler) PutSearch(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.session.SetSearch(c.Request.Context(), req.Search)
	h.respond(c, view, err)
}

// PutDistanceRange PUT /map/filters/distance - 距離スライダー
func (h *MapSessionHandler) PutDistanceRange(c *gin.Context) {
	var req model.DistanceRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.session.SetDistanceRange(c.Request.Context(), *req.MinDistance, *req.MaxDistance)
	h.respond(c, view, err)
}

// PutDifficulty PUT /map/filters/difficulty - 難易度チェックボックス
func (h *MapSessionHandler) PutDifficulty(c *gin.Context) {
	var req model.DifficultyToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.session.SetDifficulty(c.Request.Context(), req.Key, *req.Enabled)
	h.respond(c, view, err)
}

// PostSelection POST /map/selection - ルートを選択
func (h *MapSessionHandler) PostSelection(c *gin.Context) {
	var req model.SelectRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.session.SelectRoute(c.Request.Context(), req.RouteID)
	h.respond(c, view, err)
}

// DeleteSelection DELETE /map/selection - 選択を解除
func (h *MapSessionHandler) DeleteSelection(c *gin.Context) {
	view, err := h.session.ClearSelection(c.Request.Context())
	h.respond(c, view, err)
}

// PutZoom PUT /map/zoom - ズームレベルの変更
func (h *MapSessionHandler) PutZoom(c *gin.Context) {
	var req model.ZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.session.SetZoom(c.Request.Context(), *req.Zoom)
	h.respond(c, view, err)
}

func (h *MapSessionHandler) respond(c *gin.Context, view *model.MapView, err error) {
	if err != nil {
		respondError(c, h.log, "地図の更新に失敗しました", err)
		return
	}
	c.JSON(http.StatusOK, view)
}
