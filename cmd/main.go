package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"RutasVerdes-App/internal/config"
	"RutasVerdes-App/internal/domain/service"
	"RutasVerdes-App/internal/handler"
	"RutasVerdes-App/internal/infrastructure/geodata"
	"RutasVerdes-App/internal/infrastructure/logger"
	"RutasVerdes-App/internal/repository"
	"RutasVerdes-App/internal/usecase"
)

const serviceName = "rutasverdes"

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !envLoaded {
		log.Warn(".envファイルが見つかりません。環境変数を使用します")
	}

	// 静的GeoJSONの読み込み（起動時に一度だけ）
	routesClient, err := geodata.NewGeoJSONFileClient(cfg.RoutesGeoJSONPath)
	if err != nil {
		log.Fatal("ルートデータ設定エラー", zap.Error(err))
	}
	placesClient, err := geodata.NewGeoJSONFileClient(cfg.PlacesGeoJSONPath)
	if err != nil {
		log.Fatal("地名データ設定エラー", zap.Error(err))
	}
	for _, client := range []*geodata.GeoJSONFileClient{routesClient, placesClient} {
		if err := client.HealthCheck(); err != nil {
			log.Fatal("GeoJSONヘルスチェック失敗", zap.Error(err))
		}
	}

	routesRepo, err := repository.NewGeoJSONRoutesRepository(routesClient, log)
	if err != nil {
		log.Fatal("ルートデータの読み込みに失敗", zap.Error(err))
	}
	placesRepo, err := repository.NewGeoJSONPlacesRepository(placesClient, log)
	if err != nil {
		log.Fatal("地名データの読み込みに失敗", zap.Error(err))
	}

	// Dependency injection
	viewService := service.NewMapViewService(routesRepo, placesRepo, log)
	sessionService := service.NewMapSessionService(viewService, log)
	routeQueryUseCase := usecase.NewRouteQueryUseCase(viewService, log)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            log,
		Health:         handler.NewHealthHandler(routesRepo, placesRepo, serviceName),
		Routes:         handler.NewRoutesHandler(routeQueryUseCase, log),
		MapSession:     handler.NewMapSessionHandler(sessionService, log),
	})
	if err != nil {
		log.Fatal("ルーターの初期化に失敗", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("RutasVerdes server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
