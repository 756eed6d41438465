package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"RutasVerdes-App/internal/usecase"
)

// RoutesHandler 状態を持たないルート・地名APIのハンドラー
type RoutesHandler struct {
	useCase usecase.RouteQueryUseCase
	log     *zap.Logger
}

// NewRoutesHandler は新しいRoutesHandlerインスタンスを作成
func NewRoutesHandler(useCase usecase.RouteQueryUseCase, log *zap.Logger) *RoutesHandler {
	return &RoutesHandler{
		useCase: useCase,
		log:     log,
	}
}

// RegisterRoutes はエンドポイントを登録する
func (h *RoutesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/routes", h.GetRoutes)
	rg.GET("/routes/:id", h.GetRouteDetail)
	rg.GET("/places", h.GetPlaces)
}

// GetRoutes はフィルタに一致するルートをGeoJSONで返す
// GET /routes?search=&min_km=&max_km=&difficulty=&selected=
func (h *RoutesHandler) GetRoutes(c *gin.Context) {
	filters, err := parseFilterQuery(c)
	if err != nil {
		respondError(c, h.log, "ルート一覧の取得に失敗しました", err)
		return
	}

	view, err := h.useCase.ListRoutes(c.Request.Context(), filters, c.Query("selected"))
	if err != nil {
		respondError(c, h.log, "ルート一覧の取得に失敗しました", err)
		return
	}

	c.JSON(http.StatusOK, toRouteFeatureCollection(view))
}

// GetRouteDetail はルートの詳細を返す
// GET /routes/:id
func (h *RoutesHandler) GetRouteDetail(c *gin.Context) {
	detail, err := h.useCase.GetRouteDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "ルート詳細の取得に失敗しました", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetPlaces はズームレベルに応じた地名ラベルを返す
// GET /places?zoom=
func (h *RoutesHandler) GetPlaces(c *gin.Context) {
	zoom, err := parseZoomQuery(c)
	if err != nil {
		respondError(c, h.log, "地名の取得に失敗しました", err)
		return
	}

	labels, err := h.useCase.ListPlaceLabels(c.Request.Context(), zoom)
	if err != nil {
		respondError(c, h.log, "地名の取得に失敗しました", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"zoom":   zoom,
		"labels": labels,
	})
}
