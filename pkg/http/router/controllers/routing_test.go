package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	helper "github.com/ELHF-1458/Routes/pkg/http/router/routerhelper"
	"github.com/ELHF-1458/Routes/pkg/http/usecases"
	"github.com/ELHF-1458/Routes/pkg/util"
)

type fakeRoutingService struct {
	result usecases.PlanResult
	err    error
	calls  int
}

func (f *fakeRoutingService) PlanRoute(_ context.Context, points []datastructure.Waypoint,
	metric pkg.Metric, optimize bool, profile string) (usecases.PlanResult, error) {
	f.calls++
	if f.err != nil {
		return usecases.PlanResult{}, f.err
	}
	if profile != pkg.TRUCK_PROFILE {
		return usecases.PlanResult{}, util.WrapErrorf(nil, util.ErrUnprocessableEntity,
			"unsupported profile '%s'", profile)
	}
	if err := datastructure.ValidateWaypoints(points); err != nil {
		return usecases.PlanResult{}, err
	}
	return f.result, nil
}

func testRouter(service *fakeRoutingService) http.Handler {
	router := httprouter.New()
	group := helper.NewRouteGroup(router, "")
	api := New(service, BackendInfo{
		BaseURL:     "https://router.project-osrm.org",
		ProfileNote: "truck->driving",
	}, zap.NewNop())
	api.Routes(group)
	return router
}

func fixtureResult() usecases.PlanResult {
	return usecases.PlanResult{
		Distance:             1234.5,
		Duration:             620.0,
		OrderingInputIndices: []int{1, 0, 2},
		OrderedPoints: []datastructure.Waypoint{
			datastructure.NewWaypoint(33.57, -7.59, datastructure.START),
			datastructure.NewWaypoint(34.02, -6.83, datastructure.VIA),
			datastructure.NewWaypoint(31.63, -8.01, datastructure.END),
		},
		Geometry: datastructure.Geometry{
			Type:        "LineString",
			Coordinates: [][]float64{{-7.59, 33.57}, {-8.01, 31.63}},
		},
		PathPolyline: "_p~iF~ps|U",
	}
}

const validBody = `{
	"points": [
		{"lat": 34.02, "lon": -6.83, "role": "start"},
		{"lat": 33.57, "lon": -7.59, "role": "via"},
		{"lat": 31.63, "lon": -8.01, "role": "end"}
	],
	"metric": "distance",
	"optimize": true,
	"profile": "truck"
}`

func postRoute(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	handler := testRouter(&fakeRoutingService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "https://router.project-osrm.org", payload["backend_base"])
	assert.Equal(t, "truck->driving", payload["mapped_profile"])
}

func TestPlanRouteHappyPath(t *testing.T) {
	service := &fakeRoutingService{result: fixtureResult()}
	handler := testRouter(service)

	rec := postRoute(t, handler, validBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		DistanceM            float64 `json:"distance_m"`
		DurationS            float64 `json:"duration_s"`
		OrderingInputIndices []int   `json:"ordering_input_indices"`
		OrderedPoints        []struct {
			Role string `json:"role"`
		} `json:"ordered_points"`
		Geometry datastructure.Geometry `json:"geometry"`
		Path     string                 `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, 1234.5, payload.DistanceM)
	assert.Equal(t, 620.0, payload.DurationS)
	assert.Equal(t, []int{1, 0, 2}, payload.OrderingInputIndices)
	require.Len(t, payload.OrderedPoints, 3)
	assert.Equal(t, "start", payload.OrderedPoints[0].Role)
	assert.Equal(t, "LineString", payload.Geometry.Type)
	assert.NotEmpty(t, payload.Path)
}

func TestPlanRouteValidation(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "malformed json",
			body:       `{"points": [`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "too few points",
			body: `{"points": [
				{"lat": 1, "lon": 1, "role": "start"},
				{"lat": 2, "lon": 2, "role": "end"}
			]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid role value",
			body: `{"points": [
				{"lat": 1, "lon": 1, "role": "depot"},
				{"lat": 2, "lon": 2, "role": "via"},
				{"lat": 3, "lon": 3, "role": "end"}
			]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "two starts",
			body: `{"points": [
				{"lat": 1, "lon": 1, "role": "start"},
				{"lat": 2, "lon": 2, "role": "start"},
				{"lat": 3, "lon": 3, "role": "end"}
			]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid metric",
			body: `{"metric": "fuel", "points": [
				{"lat": 1, "lon": 1, "role": "start"},
				{"lat": 2, "lon": 2, "role": "via"},
				{"lat": 3, "lon": 3, "role": "end"}
			]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unsupported profile",
			body: `{"profile": "bicycle", "points": [
				{"lat": 1, "lon": 1, "role": "start"},
				{"lat": 2, "lon": 2, "role": "via"},
				{"lat": 3, "lon": 3, "role": "end"}
			]}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeRoutingService{result: fixtureResult()}
			handler := testRouter(service)

			rec := postRoute(t, handler, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestPlanRouteBackendErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "backend unreachable",
			err:        util.WrapErrorf(nil, util.ErrBadGateway, "osrm /table unreachable"),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "no route found",
			err:        util.WrapErrorf(nil, util.ErrNotFound, "no route found"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeRoutingService{err: tt.err}
			handler := testRouter(service)

			rec := postRoute(t, handler, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var payload errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload.Error.Code)
		})
	}
}

func TestPlanRouteDefaults(t *testing.T) {
	service := &fakeRoutingService{result: fixtureResult()}
	handler := testRouter(service)

	// no metric/optimize/profile: defaults to distance/true/truck
	body := `{"points": [
		{"lat": 1, "lon": 1, "role": "start"},
		{"lat": 2, "lon": 2, "role": "via"},
		{"lat": 3, "lon": 3, "role": "end"}
	]}`
	rec := postRoute(t, handler, body)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, service.calls)
}
