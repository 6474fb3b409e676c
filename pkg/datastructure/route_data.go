package datastructure

import (
	"github.com/ELHF-1458/Routes/pkg/geo"
)

// Geometry is a geojson LineString as returned by the route backend.
// coordinates are [lon, lat] pairs, geojson order.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Coords converts the geojson [lon, lat] pairs into lat/lon coordinates.
func (g Geometry) Coords() []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(g.Coordinates))
	for _, lonLat := range g.Coordinates {
		if len(lonLat) < 2 {
			continue
		}
		coords = append(coords, geo.NewCoordinate(lonLat[1], lonLat[0]))
	}
	return coords
}

// Route is the synthesized path for one specific visiting order.
type Route struct {
	Distance float64  // meter
	Duration float64  // second
	Geometry Geometry // simplified path geometry
}

func NewRoute(distance, duration float64, geometry Geometry) Route {
	return Route{
		Distance: distance,
		Duration: duration,
		Geometry: geometry,
	}
}
