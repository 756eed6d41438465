package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"RutasVerdes-App/internal/domain/repository"
)

// HealthHandler ヘルスチェック
type HealthHandler struct {
	routesRepo  repository.RoutesRepository
	placesRepo  repository.PlacesRepository
	serviceName string
}

func NewHealthHandler(routesRepo repository.RoutesRepository, placesRepo repository.PlacesRepository, serviceName string) *HealthHandler {
	return &HealthHandler{
		routesRepo:  routesRepo,
		placesRepo:  placesRepo,
		serviceName: serviceName,
	}
}

func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.GetHealth)
}

// GetHealth GET /health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"routes":  h.routesRepo.Count(),
		"places":  h.placesRepo.Count(),
	})
}
