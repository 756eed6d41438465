package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceConfig はサービス全体の設定
type ServiceConfig struct {
	Port              string
	AppEnv            string
	RoutesGeoJSONPath string
	PlacesGeoJSONPath string
	AllowedOrigins    []string
}

// Addr は http.Server 用のアドレス
func (c *ServiceConfig) Addr() string {
	return ":" + c.Port
}

// IsDevelopment は開発環境かどうか
func (c *ServiceConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load は .env（存在すれば）と環境変数から設定を読み込む
// .env がない場合は環境変数のみを使用し、envLoaded=false を返す
func Load(envFiles ...string) (cfg *ServiceConfig, envLoaded bool, err error) {
	envLoaded = godotenv.Load(envFiles...) == nil

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ROUTES_GEOJSON_PATH", "data/senda.geojson")
	v.SetDefault("PLACES_GEOJSON_PATH", "data/lugares_cyl.geojson")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	cfg, err = fromViper(v)
	return cfg, envLoaded, err
}

func fromViper(v *viper.Viper) (*ServiceConfig, error) {
	cfg := &ServiceConfig{
		Port:              strings.TrimPrefix(v.GetString("PORT"), ":"),
		AppEnv:            v.GetString("APP_ENV"),
		RoutesGeoJSONPath: v.GetString("ROUTES_GEOJSON_PATH"),
		PlacesGeoJSONPath: v.GetString("PLACES_GEOJSON_PATH"),
		AllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT環境変数が空です")
	}
	if cfg.RoutesGeoJSONPath == "" {
		return nil, fmt.Errorf("ROUTES_GEOJSON_PATH環境変数が空です")
	}
	if cfg.PlacesGeoJSONPath == "" {
		return nil, fmt.Errorf("PLACES_GEOJSON_PATH環境変数が空です")
	}
	for _, origin := range cfg.AllowedOrigins {
		if !validOrigin(origin) {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINSの値が不正です（http:// または https:// で始めてください）: %q", origin)
		}
	}
	return cfg, nil
}

func validOrigin(origin string) bool {
	return origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
