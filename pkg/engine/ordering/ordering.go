package ordering

import (
	"errors"
	"math"

	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/geo"
)

// ErrMatrixIncomplete reports a cost matrix whose dimensions or entries do
// not cover the canonical sequence. the optimizer never substitutes a
// default cost for a missing entry.
var ErrMatrixIncomplete = errors.New("cost matrix is missing or incomplete")

// Sequence is the canonical [start, vias..., end] arrangement of the input
// waypoints, together with the original input position of every entry.
type Sequence struct {
	points       []datastructure.Waypoint
	inputIndices []int
}

func (s *Sequence) Len() int {
	return len(s.points)
}

func (s *Sequence) GetPoints() []datastructure.Waypoint {
	return s.points
}

func (s *Sequence) GetInputIndices() []int {
	return s.inputIndices
}

func (s *Sequence) GetCoordinates() []geo.Coordinate {
	return datastructure.WaypointCoordinates(s.points)
}

func (s *Sequence) ViaCount() int {
	if s.Len() < 2 {
		return 0
	}
	return s.Len() - 2
}

// Reindex rearranges points into the canonical [start, vias..., end] order,
// vias keeping their relative input order, and records the original input
// position of every canonical entry. callers must have validated the
// one-start/one-end invariant already. pure, O(N).
func Reindex(points []datastructure.Waypoint) *Sequence {
	var (
		startIdx, endIdx int
		viaIndices       []int
	)
	for i, p := range points {
		switch p.GetRole() {
		case datastructure.START:
			startIdx = i
		case datastructure.END:
			endIdx = i
		default:
			viaIndices = append(viaIndices, i)
		}
	}

	inputIndices := make([]int, 0, len(points))
	inputIndices = append(inputIndices, startIdx)
	inputIndices = append(inputIndices, viaIndices...)
	inputIndices = append(inputIndices, endIdx)

	ordered := make([]datastructure.Waypoint, len(inputIndices))
	for i, inputIdx := range inputIndices {
		ordered[i] = points[inputIdx]
	}

	return &Sequence{points: ordered, inputIndices: inputIndices}
}

// Ordering is one candidate visiting order over local (canonical) indices,
// position 0 pinned to start and position N-1 pinned to end.
type Ordering struct {
	order []int
	cost  float64
}

func (o Ordering) GetOrder() []int {
	return o.order
}

func (o Ordering) GetCost() float64 {
	return o.cost
}

// Identity is the pass-through ordering over the canonical sequence.
func Identity(n int) Ordering {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return Ordering{order: order, cost: 0}
}

// Optimize exhaustively enumerates every permutation of the via points
// (lexicographic order) between the fixed start and end and returns the
// minimum-total-cost ordering. exact for our bounded via count, ties go to
// the first permutation enumerated. with no vias the identity ordering is
// returned without touching the matrix.
func Optimize(seq *Sequence, matrix [][]float64) (Ordering, error) {
	n := seq.Len()
	if seq.ViaCount() == 0 {
		return Identity(n), nil
	}

	if err := validateMatrix(matrix, n); err != nil {
		return Ordering{}, err
	}

	viaLocalIndices := make([]int, seq.ViaCount())
	for i := range viaLocalIndices {
		viaLocalIndices[i] = i + 1
	}

	var (
		bestOrder []int
		bestCost  = math.Inf(1)
	)

	candidate := make([]int, 0, n)
	forEachPermutation(viaLocalIndices, func(perm []int) {
		candidate = candidate[:0]
		candidate = append(candidate, 0)
		candidate = append(candidate, perm...)
		candidate = append(candidate, n-1)

		cost := orderingCost(candidate, matrix)
		if cost < bestCost {
			bestCost = cost
			bestOrder = append([]int(nil), candidate...)
		}
	})

	return Ordering{order: bestOrder, cost: bestCost}, nil
}

// orderingCost sums the matrix entries along consecutive pairs of the order.
func orderingCost(order []int, matrix [][]float64) float64 {
	var cost float64
	for i := 0; i < len(order)-1; i++ {
		cost += matrix[order[i]][order[i+1]]
	}
	return cost
}

func validateMatrix(matrix [][]float64, n int) error {
	if len(matrix) != n {
		return ErrMatrixIncomplete
	}
	for _, row := range matrix {
		if len(row) != n {
			return ErrMatrixIncomplete
		}
		for _, entry := range row {
			if math.IsNaN(entry) || entry < 0 {
				return ErrMatrixIncomplete
			}
		}
	}
	return nil
}

// Translate maps an ordering over local canonical indices back to the
// caller's original input indices. pure, O(N).
func Translate(order []int, inputIndices []int) []int {
	translated := make([]int, len(order))
	for i, localIdx := range order {
		translated[i] = inputIndices[localIdx]
	}
	return translated
}

// Apply materializes the ordering as a reordered waypoint slice.
func Apply(order []int, points []datastructure.Waypoint) []datastructure.Waypoint {
	ordered := make([]datastructure.Waypoint, len(order))
	for i, localIdx := range order {
		ordered[i] = points[localIdx]
	}
	return ordered
}
