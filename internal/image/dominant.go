package image

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/jmylchreest/paletto/internal/colour"
)

// Cluster is one dominant colour and the share of sampled pixels it covers.
type Cluster struct {
	Colour colour.RGB `json:"colour"`
	Weight float64    `json:"weight"`
}

const (
	maxSamples    = 2000
	maxIterations = 20
	convergence   = 2.0
)

// point is a colour in RGB space.
type point struct {
	R, G, B float64
}

func (p point) distance(o point) float64 {
	dr, dg, db := p.R-o.R, p.G-o.G, p.B-o.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point) rgb() colour.RGB {
	return colour.RGB{R: channel(p.R), G: channel(p.G), B: channel(p.B)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// DominantColours clusters the opaque pixels of img into at most k colours
// with k-means++ and returns them heaviest first. r seeds centroid
// selection, so equal seeds give equal results.
func DominantColours(img image.Image, k int, r *rand.Rand) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}

	points := samplePoints(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no opaque pixels in image")
	}

	// Fewer distinct colours than clusters: each is its own cluster.
	counts := make(map[point]int)
	var unique []point
	for _, p := range points {
		if counts[p] == 0 {
			unique = append(unique, p)
		}
		counts[p]++
	}
	if len(unique) <= k {
		clusters := make([]Cluster, len(unique))
		for i, p := range unique {
			clusters[i] = Cluster{Colour: p.rgb(), Weight: float64(counts[p]) / float64(len(points))}
		}
		return sortClusters(clusters), nil
	}

	centroids, weights := kmeans(points, k, r)
	clusters := make([]Cluster, 0, k)
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Colour: c.rgb(), Weight: weights[i]})
	}
	return sortClusters(clusters), nil
}

func sortClusters(clusters []Cluster) []Cluster {
	slices.SortStableFunc(clusters, func(a, b Cluster) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return clusters
}

// samplePoints returns the opaque pixels of img on an even grid covering
// the whole image, with a step chosen so at most about maxSamples are read.
func samplePoints(img image.Image) []point {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := 1
	if total > maxSamples {
		step = int(math.Ceil(math.Sqrt(float64(total) / maxSamples)))
	}

	points := make([]point, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa < 0x8000 {
				continue
			}
			points = append(points, point{
				R: float64(uint64(pr)*0xffff/uint64(pa)>>8),
				G: float64(uint64(pg)*0xffff/uint64(pa)>>8),
				B: float64(uint64(pb)*0xffff/uint64(pa)>>8),
			})
		}
	}
	return points
}

// kmeans returns k centroids and the fraction of points assigned to each.
func kmeans(points []point, k int, r *rand.Rand) ([]point, []float64) {
	centroids := seedCentroids(points, k, r)
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			if nearest := nearestCentroid(p, centroids); assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		// Fewer than 1% of points moved.
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recentre(points, assignments, k, r)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < convergence {
			break
		}
	}

	// Final assignment against the settled centroids.
	weights := make([]float64, k)
	for _, p := range points {
		weights[nearestCentroid(p, centroids)]++
	}
	for i := range weights {
		weights[i] /= float64(len(points))
	}
	return centroids, weights
}

// seedCentroids picks initial centroids with k-means++: each next centroid
// is chosen with probability proportional to its squared distance from the
// nearest centroid so far.
func seedCentroids(points []point, k int, r *rand.Rand) []point {
	centroids := make([]point, 0, k)
	centroids = append(centroids, points[r.IntN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := p.distance(centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}
		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := r.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}

func nearestCentroid(p point, centroids []point) int {
	best, nearest := math.MaxFloat64, 0
	for i, c := range centroids {
		if d := p.distance(c); d < best {
			best, nearest = d, i
		}
	}
	return nearest
}

// recentre moves each centroid to the mean of its points. Empty clusters
// are reseeded from a random point.
func recentre(points []point, assignments []int, k int, r *rand.Rand) []point {
	sums := make([]point, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point, k)
	for i := range k {
		if counts[i] == 0 {
			centroids[i] = points[r.IntN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}
