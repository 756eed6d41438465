package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig ルーター構築に必要な依存
type RouterConfig struct {
	AllowedOrigins []string
	Log            *zap.Logger

	Health     *HealthHandler
	Routes     *RoutesHandler
	MapSession *MapSessionHandler
}

// NewRouter はミドルウェアとエンドポイントを登録したGinエンジンを作成する
// CORS設定が不正な場合はエラーを返す
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	corsCfg := corsConfig(cfg.AllowedOrigins)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("CORS設定が不正です: %w", err)
	}

	r := gin.New()

	r.Use(RecoveryMiddleware(cfg.Log))
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(cfg.Log))
	r.Use(cors.New(corsCfg))

	root := &r.RouterGroup
	cfg.Health.RegisterRoutes(root)
	cfg.Routes.RegisterRoutes(root)
	cfg.MapSession.RegisterRoutes(root)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
