package osrm

import (
	"time"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
)

const (
	PublicBaseURL = "https://router.project-osrm.org"

	DefaultTableTimeout = 25 * time.Second
	DefaultRouteTimeout = 40 * time.Second
)

// Config carries the backend address, the public-profile translation table
// and the per-call timeouts. passed in explicitly so the client stays free
// of ambient globals.
type Config struct {
	BaseURL      string
	ProfileMap   map[string]string
	TableTimeout time.Duration
	RouteTimeout time.Duration
}

// DefaultConfig targets the public OSRM demo server. the demo server has no
// genuine truck profile (no weight/height restrictions), so "truck" degrades
// to "driving" — keep this translation table explicit and visible.
func DefaultConfig() Config {
	return Config{
		BaseURL: PublicBaseURL,
		ProfileMap: map[string]string{
			pkg.TRUCK_PROFILE: "driving",
		},
		TableTimeout: DefaultTableTimeout,
		RouteTimeout: DefaultRouteTimeout,
	}
}

// tableResponse mirrors the OSRM /table payload. absent entries come back
// as json null, decoded here as nil pointers.
type tableResponse struct {
	Code      string       `json:"code"`
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

type routeResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64                `json:"distance"`
	Duration float64                `json:"duration"`
	Geometry datastructure.Geometry `json:"geometry"`
}
