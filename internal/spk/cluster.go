package spk

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KMeans partitions points into K groups by Lloyd iterations over Euclidean
// distance. Each restart is seeded with k-means++ from a single generator
// seeded with Seed, so identical input yields identical labels. The restart
// with the lowest inertia wins; ties keep the earlier restart.
type KMeans struct {
	K        int
	Seed     int64
	Restarts int
	MaxIter  int
	Tol      float64 // relative to the mean per-feature variance
}

// Clustering is the outcome of a KMeans fit.
type Clustering struct {
	Labels    []int
	Centroids [][]float64
	Inertia   float64
	Iter      int
}

// Fit clusters points. It needs at least K points.
func (km KMeans) Fit(points [][]float64) (Clustering, error) {
	if len(points) < km.K {
		return Clustering{}, &ValidationError{Kind: KindTooFewRows, Rows: len(points), Need: km.K}
	}
	restarts := km.Restarts
	if restarts < 1 {
		restarts = 1
	}
	maxIter := km.MaxIter
	if maxIter < 1 {
		maxIter = 300
	}
	tol := scaledTolerance(points, km.Tol)
	rng := rand.New(rand.NewSource(km.Seed))

	var best Clustering
	for r := 0; r < restarts; r++ {
		centers := seedPlusPlus(points, km.K, rng)
		c := lloyd(points, centers, maxIter, tol)
		if r == 0 || c.Inertia < best.Inertia {
			best = c
		}
	}
	return best, nil
}

func scaledTolerance(points [][]float64, tol float64) float64 {
	if tol <= 0 {
		return 0
	}
	n := len(points)
	if n < 2 {
		return 0
	}
	dim := len(points[0])
	col := make([]float64, n)
	var sum float64
	for d := 0; d < dim; d++ {
		for i, p := range points {
			col[i] = p[d]
		}
		// population variance
		sum += stat.Variance(col, nil) * float64(n-1) / float64(n)
	}
	return sum / float64(dim) * tol
}

func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// seedPlusPlus picks k initial centers, each new one with probability
// proportional to its squared distance from the nearest chosen center.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, clone(points[rng.Intn(len(points))]))

	dist := make([]float64, len(points))
	for i, p := range points {
		dist[i] = sqDist(p, centers[0])
	}
	for len(centers) < k {
		total := floats.Sum(dist)
		idx := -1
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range dist {
				if d == 0 {
					continue
				}
				idx = i
				if target -= d; target < 0 {
					break
				}
			}
		} else {
			idx = rng.Intn(len(points))
		}
		c := clone(points[idx])
		centers = append(centers, c)
		for i, p := range points {
			if d := sqDist(p, c); d < dist[i] {
				dist[i] = d
			}
		}
	}
	return centers
}

func lloyd(points [][]float64, centers [][]float64, maxIter int, tol float64) Clustering {
	k, dim := len(centers), len(points[0])
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	iter := 0
	for iter < maxIter {
		iter++
		changed := assign(points, centers, labels)

		next := make([][]float64, k)
		counts := make([]int, k)
		for j := range next {
			next[j] = make([]float64, dim)
		}
		for i, p := range points {
			floats.Add(next[labels[i]], p)
			counts[labels[i]]++
		}
		for j := range next {
			if counts[j] > 0 {
				floats.Scale(1/float64(counts[j]), next[j])
			}
		}
		relocateEmpty(points, labels, next, counts)

		var shift float64
		for j := range centers {
			shift += sqDist(centers[j], next[j])
		}
		centers = next
		if !changed || shift <= tol {
			break
		}
	}
	assign(points, centers, labels)

	var inertia float64
	for i, p := range points {
		inertia += sqDist(p, centers[labels[i]])
	}
	return Clustering{Labels: labels, Centroids: centers, Inertia: inertia, Iter: iter}
}

// assign labels every point with its nearest center (lowest index on ties)
// and reports whether any label changed.
func assign(points, centers [][]float64, labels []int) bool {
	changed := false
	for i, p := range points {
		best, bestD := 0, math.Inf(1)
		for j, c := range centers {
			if d := sqDist(p, c); d < bestD {
				best, bestD = j, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}

// relocateEmpty moves each empty cluster onto the point farthest from its
// own center, taking that point out of its previous cluster.
func relocateEmpty(points [][]float64, labels []int, centers [][]float64, counts []int) {
	for j := range centers {
		if counts[j] > 0 {
			continue
		}
		far, farD := -1, -1.0
		for i, p := range points {
			if counts[labels[i]] < 2 {
				continue
			}
			if d := sqDist(p, centers[labels[i]]); d > farD {
				far, farD = i, d
			}
		}
		if far < 0 {
			return
		}
		from := labels[far]
		counts[from]--
		counts[j] = 1
		labels[far] = j
		copy(centers[j], points[far])
		// recompute the donor center without the moved point
		sum := make([]float64, len(centers[from]))
		for i, p := range points {
			if labels[i] == from {
				floats.Add(sum, p)
			}
		}
		floats.Scale(1/float64(counts[from]), sum)
		centers[from] = sum
	}
}

func clone(p []float64) []float64 {
	return append([]float64(nil), p...)
}
