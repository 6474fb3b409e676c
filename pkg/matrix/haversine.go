package matrix

import (
	"context"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/geo"
	"go.uber.org/zap"
)

// average city driving speed used to turn great-circle distance into a
// duration estimate when no routing backend provides real travel times.
const averageSpeedKmph = 30.0

// HaversineProvider computes the pairwise cost matrix from great-circle
// distance instead of calling a routing backend. selected by configuration
// for offline or air-gapped deployments; it is never an automatic fallback
// when the backend fails.
type HaversineProvider struct {
	log *zap.Logger
}

func NewHaversineProvider(log *zap.Logger) *HaversineProvider {
	return &HaversineProvider{log: log}
}

func (h *HaversineProvider) Table(_ context.Context, coords []geo.Coordinate,
	_ string, metric pkg.Metric) ([][]float64, error) {

	n := len(coords)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		for j := range mat[i] {
			if i == j {
				continue
			}
			distanceM := geo.HaversineDistanceMeter(coords[i], coords[j])
			if metric == pkg.DURATION {
				mat[i][j] = distanceM / 1000.0 / averageSpeedKmph * 3600.0
				continue
			}
			mat[i][j] = distanceM
		}
	}
	return mat, nil
}
