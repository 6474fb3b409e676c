package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/geo"
	"github.com/ELHF-1458/Routes/pkg/util"
	"go.uber.org/zap"
)

// Client talks to an OSRM-compatible backend over its /table and /route
// services. one call per request pipeline, no retries, failures surface
// immediately to the caller.
type Client struct {
	config     Config
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config Config, log *zap.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{},
		log:        log,
	}
}

func (c *Client) GetBaseURL() string {
	return c.config.BaseURL
}

// MapProfile translates a public profile name into the profile identifier
// the backend actually supports.
func (c *Client) MapProfile(profile string) (string, error) {
	backendProfile, ok := c.config.ProfileMap[profile]
	if !ok {
		return "", util.WrapErrorf(nil, util.ErrUnprocessableEntity,
			"unsupported profile '%s'", profile)
	}
	return backendProfile, nil
}

// ProfileNote describes the active profile degradation for the health payload.
func (c *Client) ProfileNote() string {
	notes := make([]string, 0, len(c.config.ProfileMap))
	for public, backend := range c.config.ProfileMap {
		notes = append(notes, fmt.Sprintf("%s->%s", public, backend))
	}
	return strings.Join(notes, ",")
}

// coordsPath serializes coordinates the way OSRM expects them: lon,lat
// pairs joined by ';'.
func coordsPath(coords []geo.Coordinate) string {
	pairs := make([]string, len(coords))
	for i, coord := range coords {
		pairs[i] = fmt.Sprintf("%f,%f", coord.GetLon(), coord.GetLat())
	}
	return strings.Join(pairs, ";")
}

// Table fetches the full NxN cost matrix between coords from the backend
// /table service. absent matrix entries decode to NaN so the optimizer can
// reject the matrix instead of silently defaulting a cost.
func (c *Client) Table(ctx context.Context, coords []geo.Coordinate,
	backendProfile string, metric pkg.Metric) ([][]float64, error) {

	annotations := "distance"
	if metric == pkg.DURATION {
		annotations = "duration"
	}

	endpoint := fmt.Sprintf("%s/table/v1/%s/%s", c.config.BaseURL, backendProfile, coordsPath(coords))
	params := url.Values{}
	params.Set("annotations", annotations)

	ctx, cancel := context.WithTimeout(ctx, c.config.TableTimeout)
	defer cancel()

	body, err := c.get(ctx, endpoint, params, "/table")
	if err != nil {
		return nil, err
	}

	var table tableResponse
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadGateway, "osrm /table returned malformed payload")
	}

	raw := table.Distances
	if annotations == "duration" {
		raw = table.Durations
	}
	if len(raw) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadGateway, "osrm /table returned no matrix")
	}

	matrix := make([][]float64, len(raw))
	for i, row := range raw {
		matrix[i] = make([]float64, len(row))
		for j, entry := range row {
			if entry == nil {
				matrix[i][j] = math.NaN()
				continue
			}
			matrix[i][j] = *entry
		}
	}
	return matrix, nil
}

// Route asks the backend /route service for the path visiting coords in
// exactly the given order, with a simplified geojson overview.
func (c *Client) Route(ctx context.Context, coords []geo.Coordinate,
	backendProfile string) (datastructure.Route, error) {

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s", c.config.BaseURL, backendProfile, coordsPath(coords))
	params := url.Values{}
	params.Set("overview", "simplified")
	params.Set("geometries", "geojson")
	params.Set("steps", "false")
	params.Set("annotations", "false")

	ctx, cancel := context.WithTimeout(ctx, c.config.RouteTimeout)
	defer cancel()

	body, err := c.get(ctx, endpoint, params, "/route")
	if err != nil {
		return datastructure.Route{}, err
	}

	var response routeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return datastructure.Route{}, util.WrapErrorf(err, util.ErrBadGateway, "osrm /route returned malformed payload")
	}
	if len(response.Routes) == 0 {
		return datastructure.Route{}, util.WrapErrorf(nil, util.ErrNotFound, "no route found")
	}

	best := response.Routes[0]
	return datastructure.NewRoute(best.Distance, best.Duration, best.Geometry), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, service string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "osrm %s build request", service)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadGateway, "osrm %s unreachable: %v", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadGateway, "osrm %s read response", service)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("osrm backend returned non-200",
			zap.String("service", service), zap.Int("status", resp.StatusCode))
		return nil, util.WrapErrorf(nil, util.ErrBadGateway, "osrm %s error: %s", service, string(body))
	}
	return body, nil
}
