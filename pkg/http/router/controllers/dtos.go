package controllers

import (
	"errors"
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/http/usecases"
)

type routePoint struct {
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lon  float64 `json:"lon" validate:"min=-180,max=180"`
	Role string  `json:"role" validate:"required,oneof=start via end"`
}

type routeRequest struct {
	Points   []routePoint `json:"points" validate:"required,min=3,max=5,dive"`
	Metric   string       `json:"metric" validate:"omitempty,oneof=distance time"`
	Optimize *bool        `json:"optimize"`
	Profile  string       `json:"profile"`
}

// defaults mirror the original deployment: optimize on, distance metric,
// truck profile.
func (r *routeRequest) applyDefaults() {
	if r.Profile == "" {
		r.Profile = pkg.TRUCK_PROFILE
	}
	if r.Metric == "" {
		r.Metric = "distance"
	}
}

func (r *routeRequest) optimizeEnabled() bool {
	if r.Optimize == nil {
		return true
	}
	return *r.Optimize
}

func (r *routeRequest) waypoints() []datastructure.Waypoint {
	points := make([]datastructure.Waypoint, len(r.Points))
	for i, p := range r.Points {
		points[i] = datastructure.NewWaypoint(p.Lat, p.Lon, datastructure.ParseRole(p.Role))
	}
	return points
}

type routeResponse struct {
	DistanceM            float64                `json:"distance_m"`
	DurationS            float64                `json:"duration_s"`
	OrderingInputIndices []int                  `json:"ordering_input_indices"`
	OrderedPoints        []routePoint           `json:"ordered_points"`
	Geometry             datastructure.Geometry `json:"geometry"`
	Path                 string                 `json:"path"`
}

func NewRouteResponse(result usecases.PlanResult) routeResponse {
	orderedPoints := make([]routePoint, len(result.OrderedPoints))
	for i, p := range result.OrderedPoints {
		orderedPoints[i] = routePoint{
			Lat:  p.GetLat(),
			Lon:  p.GetLon(),
			Role: p.GetRole().String(),
		}
	}
	return routeResponse{
		DistanceM:            result.Distance,
		DurationS:            result.Duration,
		OrderingInputIndices: result.OrderingInputIndices,
		OrderedPoints:        orderedPoints,
		Geometry:             result.Geometry,
		Path:                 result.PathPolyline,
	}
}

type healthResponse struct {
	Status        string `json:"status"`
	BackendBase   string `json:"backend_base"`
	MappedProfile string `json:"mapped_profile"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			translatedErr := fmt.Errorf("%s", e.Translate(trans))
			errs = append(errs, translatedErr)
		}
	}
	return errs
}
