package geodata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

const featureCollectionType = "FeatureCollection"

var errNullFeature = errors.New("フィーチャーがnullです")

// GeoJSONFileClient 同梱された静的GeoJSONファイルの読み込みクライアント
type GeoJSONFileClient struct {
	path string
}

// DecodedFeature フィーチャー1件分のデコード結果
// Err が nil でない場合、そのフィーチャーは不正なレコード
type DecodedFeature struct {
	Feature *geojson.Feature
	Err     error
}

// NewGeoJSONFileClient 新しいGeoJSONFileClientを作成
func NewGeoJSONFileClient(path string) (*GeoJSONFileClient, error) {
	if path == "" {
		return nil, fmt.Errorf("GeoJSONファイルのパスが設定されていません")
	}
	return &GeoJSONFileClient{path: path}, nil
}

// Path 読み込み対象のファイルパス
func (c *GeoJSONFileClient) Path() string {
	return c.path
}

// HealthCheck ファイルが存在し読み込み可能か確認
func (c *GeoJSONFileClient) HealthCheck() error {
	info, err := os.Stat(c.path)
	if err != nil {
		return fmt.Errorf("GeoJSONファイルにアクセスできません: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("GeoJSONファイルのパスがディレクトリです: %s", c.path)
	}
	return nil
}

// ReadFeatures はFeatureCollectionを読み込み、フィーチャーを1件ずつデコードする
func (c *GeoJSONFileClient) ReadFeatures() ([]DecodedFeature, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("GeoJSONファイルの読み込みに失敗: %w", err)
	}

	features, err := DecodeFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	return features, nil
}

// DecodeFeatureCollection はFeatureCollectionをデコードする
// 不正なフィーチャーがあってもコレクション全体は失敗させず、位置を保ったまま Err に記録する
func DecodeFeatureCollection(data []byte) ([]DecodedFeature, error) {
	var collection struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("GeoJSONのパースに失敗: %w", err)
	}
	if collection.Type != featureCollectionType {
		return nil, fmt.Errorf("FeatureCollectionではありません: type=%q", collection.Type)
	}

	results := make([]DecodedFeature, len(collection.Features))
	for i, raw := range collection.Features {
		if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			results[i] = DecodedFeature{Err: fmt.Errorf("フィーチャー%dのデコードに失敗: %w", i, errNullFeature)}
			continue
		}
		feature, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			results[i] = DecodedFeature{Err: fmt.Errorf("フィーチャー%dのデコードに失敗: %w", i, err)}
			continue
		}
		results[i] = DecodedFeature{Feature: feature}
	}
	return results, nil
}
