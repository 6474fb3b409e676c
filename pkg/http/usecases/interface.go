package usecases

import (
	"context"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/geo"
)

// MatrixProvider returns the full NxN pairwise cost matrix between coords
// under the given metric. implemented by the osrm client and by the offline
// haversine provider.
type MatrixProvider interface {
	Table(ctx context.Context, coords []geo.Coordinate, backendProfile string,
		metric pkg.Metric) ([][]float64, error)
}

// RouteProvider synthesizes the path visiting coords in exactly the given
// order.
type RouteProvider interface {
	Route(ctx context.Context, coords []geo.Coordinate, backendProfile string) (datastructure.Route, error)
}

// ProfileMapper translates a caller-facing profile name into the identifier
// the backend supports, rejecting unknown profiles.
type ProfileMapper interface {
	MapProfile(profile string) (string, error)
}
