package datastructure

import (
	"github.com/ELHF-1458/Routes/pkg"
	"github.com/ELHF-1458/Routes/pkg/geo"
	"github.com/ELHF-1458/Routes/pkg/util"
)

// Role tags a waypoint as the trip origin, an intermediate stop, or the
// trip destination.
type Role uint8

const (
	START Role = iota
	VIA
	END
	UNKNOWN_ROLE
)

func (r Role) String() string {
	switch r {
	case START:
		return "start"
	case VIA:
		return "via"
	case END:
		return "end"
	default:
		return "unknown"
	}
}

func ParseRole(role string) Role {
	switch role {
	case "start":
		return START
	case "via":
		return VIA
	case "end":
		return END
	default:
		return UNKNOWN_ROLE
	}
}

// Waypoint is one role-tagged input point. immutable once built, the
// pipeline only copies it around.
type Waypoint struct {
	coord geo.Coordinate
	role  Role
}

func NewWaypoint(lat, lon float64, role Role) Waypoint {
	return Waypoint{
		coord: geo.NewCoordinate(lat, lon),
		role:  role,
	}
}

func (w Waypoint) GetCoordinate() geo.Coordinate {
	return w.coord
}

func (w Waypoint) GetLat() float64 {
	return w.coord.GetLat()
}

func (w Waypoint) GetLon() float64 {
	return w.coord.GetLon()
}

func (w Waypoint) GetRole() Role {
	return w.role
}

// WaypointCoordinates projects waypoints onto their coordinates, keeping order.
func WaypointCoordinates(points []Waypoint) []geo.Coordinate {
	coords := make([]geo.Coordinate, len(points))
	for i, p := range points {
		coords[i] = p.GetCoordinate()
	}
	return coords
}

// ValidateWaypoints enforces the request-shape invariants: 3..5 points,
// exactly one start, exactly one end, no unknown roles, coordinates inside
// the WGS-84 range. must hold before the ordering pipeline runs.
func ValidateWaypoints(points []Waypoint) error {
	if len(points) < pkg.MIN_ROUTE_POINTS || len(points) > pkg.MAX_ROUTE_POINTS {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"you must provide between %d and %d points (inclusive)", pkg.MIN_ROUTE_POINTS, pkg.MAX_ROUTE_POINTS)
	}

	var startCount, endCount int
	for _, p := range points {
		switch p.GetRole() {
		case START:
			startCount++
		case END:
			endCount++
		case VIA:
		default:
			return util.WrapErrorf(nil, util.ErrBadParamInput,
				"roles must be 'start', 'via', or 'end'")
		}
		if !p.GetCoordinate().Valid() {
			return util.WrapErrorf(nil, util.ErrBadParamInput,
				"coordinate %f,%f is outside the valid lat/lon range", p.GetLat(), p.GetLon())
		}
	}
	if startCount != 1 || endCount != 1 {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"exactly one 'start' and one 'end' are required")
	}
	return nil
}
