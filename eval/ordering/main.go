package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/ELHF-1458/Routes/pkg/concurrent"
	"github.com/ELHF-1458/Routes/pkg/datastructure"
	"github.com/ELHF-1458/Routes/pkg/engine/ordering"
)

var (
	iterations = flag.Int("iterations", 100000, "number of random matrices to check")
	numWorkers = flag.Int("workers", 8, "worker goroutines")
	seed       = flag.Int64("seed", 42, "rng seed")
)

type job struct {
	id     int
	points []datastructure.Waypoint
	matrix [][]float64
}

type result struct {
	id       int
	mismatch bool
	got      float64
	want     float64
}

// randomInstance builds 3..5 waypoints (roles shuffled across input
// positions) and a random asymmetric cost matrix over the canonical order.
func randomInstance(rng *rand.Rand, id int) job {
	n := 3 + rng.Intn(3)

	roles := make([]datastructure.Role, n)
	for i := range roles {
		roles[i] = datastructure.VIA
	}
	startPos := rng.Intn(n)
	endPos := rng.Intn(n)
	for endPos == startPos {
		endPos = rng.Intn(n)
	}
	roles[startPos] = datastructure.START
	roles[endPos] = datastructure.END

	points := make([]datastructure.Waypoint, n)
	for i := range points {
		points[i] = datastructure.NewWaypoint(rng.Float64()*180-90, rng.Float64()*360-180, roles[i])
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i != j {
				matrix[i][j] = rng.Float64() * 10000
			}
		}
	}
	return job{id: id, points: points, matrix: matrix}
}

// bruteForceMinCost independently scans every via arrangement by recursion,
// cross-checking the optimizer's permutation enumeration.
func bruteForceMinCost(matrix [][]float64) float64 {
	n := len(matrix)
	vias := make([]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		vias = append(vias, i)
	}

	best := math.Inf(1)
	used := make([]bool, len(vias))
	var walk func(last int, depth int, cost float64)
	walk = func(last, depth int, cost float64) {
		if depth == len(vias) {
			if total := cost + matrix[last][n-1]; total < best {
				best = total
			}
			return
		}
		for i, v := range vias {
			if used[i] {
				continue
			}
			used[i] = true
			walk(v, depth+1, cost+matrix[last][v])
			used[i] = false
		}
	}
	walk(0, 0, 0)
	return best
}

func check(j job) result {
	seq := ordering.Reindex(j.points)
	best, err := ordering.Optimize(seq, j.matrix)
	if err != nil {
		return result{id: j.id, mismatch: true}
	}
	want := bruteForceMinCost(j.matrix)
	return result{
		id:       j.id,
		mismatch: math.Abs(best.GetCost()-want) > 1e-9,
		got:      best.GetCost(),
		want:     want,
	}
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	pool := concurrent.NewWorkerPool[job, result](*numWorkers, *iterations)
	pool.Start(check)

	for i := 0; i < *iterations; i++ {
		pool.AddJob(randomInstance(rng, i))
	}
	pool.Close()
	go pool.Wait()

	var mismatches int
	for res := range pool.CollectResults() {
		if res.mismatch {
			mismatches++
			fmt.Printf("mismatch on instance %d: got %f want %f\n", res.id, res.got, res.want)
		}
	}

	fmt.Printf("checked %d instances, %d mismatches\n", *iterations, mismatches)
}
