package service

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"RutasVerdes-App/internal/domain/model"
)

type fakeRoutesRepository struct {
	records []model.RouteRecord
	err     error
}

func (r *fakeRoutesRepository) GetAll(ctx context.Context) ([]model.RouteRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.records, nil
}

func (r *fakeRoutesRepository) Count() int { return len(r.records) }

type fakePlacesRepository struct {
	records []model.PlaceRecord
}

func (r *fakePlacesRepository) GetAll(ctx context.Context) ([]model.PlaceRecord, error) {
	return r.records, nil
}

func (r *fakePlacesRepository) Count() int { return len(r.records) }

var errRepositoryDown = errors.New("repository down")

func testRouteRecords() []model.RouteRecord {
	return []model.RouteRecord{
		{
			Properties: geojson.Properties{"gml_id": "senda.1", "equip_b_nombre": "Senda del Cañón", "senda_dificultad": 1.0, "senda_longitud": 5400.0},
			Geometry:   orb.LineString{{-3.0047, 41.7661}, {-3.0101, 41.7702}},
		},
		{
			Properties: geojson.Properties{"gml_id": "senda.2", "equip_b_nombre": "Ruta de las Hoces", "senda_dificultad": 2.0, "senda_longitud": 12800.0},
			Geometry:   orb.LineString{{-3.8, 41.3}, {-3.81, 41.31}},
		},
		{
			Properties: geojson.Properties{"gml_id": "senda.3", "equip_b_nombre": "Subida al Almanzor", "senda_dificultad": 3.0, "senda_longitud": 18200.0},
			Geometry:   orb.MultiLineString{{{-5.1432, 40.2791}, {-5.15, 40.26}}},
		},
		{
			Properties: geojson.Properties{"gml_id": "senda.4", "equip_b_nombre": "Ruta sin trazado", "senda_longitud": 2000.0},
		},
	}
}

func testPlaceRecords() []model.PlaceRecord {
	return []model.PlaceRecord{
		{Properties: geojson.Properties{"id": "lugar.valladolid", "name": "Valladolid"}, Geometry: orb.Point{-4.7245, 41.6523}},
		{Properties: geojson.Properties{"name": "Roto"}, Geometry: orb.LineString{{-4.1, 40.9}}},
		{Properties: geojson.Properties{"name": "Segovia"}, Geometry: orb.Point{-4.1184, 40.9429}},
	}
}

func newTestViewService() MapViewService {
	return NewMapViewService(
		&fakeRoutesRepository{records: testRouteRecords()},
		&fakePlacesRepository{records: testPlaceRecords()},
		zap.NewNop(),
	)
}

func styledRouteIDs(view *model.MapView) []string {
	ids := make([]string, len(view.Routes))
	for i, r := range view.Routes {
		ids[i] = r.Route.ID
	}
	return ids
}
