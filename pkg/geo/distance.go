package geo

import (
	"math"

	"github.com/ELHF-1458/Routes/pkg/util"
	"github.com/golang/geo/s2"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// Valid reports whether the coordinate lies inside the WGS-84 range
// (lat in [-90,90], lon in [-180,180]).
func (c Coordinate) Valid() bool {
	return s2.LatLngFromDegrees(c.Lat, c.Lon).IsValid()
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// HaversineDistanceMeter. haversine distance between two coordinates in meter
func HaversineDistanceMeter(from, to Coordinate) float64 {
	return CalculateHaversineDistance(from.GetLat(), from.GetLon(), to.GetLat(), to.GetLon()) * 1000.0
}
