package usecases

import (
	"context"
	"errors"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/engine/ordering"
	"github.com/ELHF-1458/Routes/pkg/geo"
	"github.com/ELHF-1458/Routes/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log      *zap.Logger
	matrix   MatrixProvider
	router   RouteProvider
	profiles ProfileMapper
}

func NewRoutingService(log *zap.Logger, matrix MatrixProvider, router RouteProvider,
	profiles ProfileMapper) *RoutingService {
	return &RoutingService{
		log:      log,
		matrix:   matrix,
		router:   router,
		profiles: profiles,
	}
}

// PlanResult is the assembled answer for one routing request.
type PlanResult struct {
	Distance             float64
	Duration             float64
	OrderingInputIndices []int
	OrderedPoints        []datastructure.Waypoint
	Geometry             datastructure.Geometry
	PathPolyline         string
}

// PlanRoute validates the request, arranges the waypoints into the best
// visiting order and fetches the final path from the route backend.
//
// the caller's metric is accepted but the engine always optimizes and routes
// on distance, preserved from the original deployment (see DESIGN.md).
func (rs *RoutingService) PlanRoute(ctx context.Context, points []datastructure.Waypoint,
	metric pkg.Metric, optimize bool, profile string) (PlanResult, error) {

	backendProfile, err := rs.profiles.MapProfile(profile)
	if err != nil {
		return PlanResult{}, err
	}

	if metric == pkg.UNKNOWN_METRIC {
		return PlanResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"metric must be 'distance' or 'time'")
	}

	if err := datastructure.ValidateWaypoints(points); err != nil {
		return PlanResult{}, err
	}

	forcedMetric := pkg.DISTANCE

	seq := ordering.Reindex(points)

	var best ordering.Ordering
	if optimize && seq.ViaCount() > 0 {
		mat, err := rs.matrix.Table(ctx, seq.GetCoordinates(), backendProfile, forcedMetric)
		if err != nil {
			return PlanResult{}, err
		}
		best, err = ordering.Optimize(seq, mat)
		if err != nil {
			if errors.Is(err, ordering.ErrMatrixIncomplete) {
				return PlanResult{}, util.WrapErrorf(err, util.ErrBadGateway,
					"backend matrix does not cover all %d points", seq.Len())
			}
			return PlanResult{}, err
		}
		rs.log.Debug("via ordering optimized",
			zap.Ints("order", best.GetOrder()),
			zap.Float64("cost", best.GetCost()))
	} else {
		// optimization disabled or nothing to permute: keep the canonical
		// [start, vias, end] order as-is, no matrix fetch.
		best = ordering.Identity(seq.Len())
	}

	orderedPoints := ordering.Apply(best.GetOrder(), seq.GetPoints())
	orderingInputIndices := ordering.Translate(best.GetOrder(), seq.GetInputIndices())

	route, err := rs.router.Route(ctx, datastructure.WaypointCoordinates(orderedPoints), backendProfile)
	if err != nil {
		return PlanResult{}, err
	}

	return PlanResult{
		Distance:             route.Distance,
		Duration:             route.Duration,
		OrderingInputIndices: orderingInputIndices,
		OrderedPoints:        orderedPoints,
		Geometry:             route.Geometry,
		PathPolyline:         geo.PolylineFromCoords(route.Geometry.Coords()),
	}, nil
}
