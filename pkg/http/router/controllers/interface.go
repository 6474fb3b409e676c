package controllers

import (
	"context"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/http/usecases"
)

type RoutingService interface {
	PlanRoute(ctx context.Context, points []datastructure.Waypoint, metric pkg.Metric,
		optimize bool, profile string) (usecases.PlanResult, error)
}
