package pkg

// Metric is the travel-cost metric requested by the caller. The engine
// always optimizes and routes on DISTANCE regardless of the requested
// metric (see DESIGN.md), the parsed value is kept for validation only.
type Metric uint8

const (
	DISTANCE Metric = iota
	DURATION
	UNKNOWN_METRIC
)

func (m Metric) String() string {
	switch m {
	case DISTANCE:
		return "distance"
	case DURATION:
		return "duration"
	default:
		return "unknown"
	}
}

func ParseMetric(metric string) Metric {
	switch metric {
	case "distance", "":
		return DISTANCE
	case "time", "duration":
		return DURATION
	default:
		return UNKNOWN_METRIC
	}
}

const (
	MIN_ROUTE_POINTS = 3
	MAX_ROUTE_POINTS = 5

	// with at most MAX_ROUTE_POINTS points there are at most 3 vias, so
	// exhaustive permutation search is bounded at 3! = 6 orderings. raising
	// MAX_ROUTE_POINTS invalidates the brute-force optimizer contract.
	MAX_VIA_POINTS = MAX_ROUTE_POINTS - 2
)

const (
	TRUCK_PROFILE = "truck"
)

const (
	DEBUG = false
)
