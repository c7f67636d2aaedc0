// Package projection transforms deduplicated point sets: plane and
// spherical projections, grid layouts, Hilbert-curve reordering and BVH
// construction.
//
// All transforms are pure functions of their input. Geometric edge
// cases (zero magnitude, pole proximity) resolve to deterministic
// fallback values rather than errors; only the BVH modes can fail.
package projection

import (
	"math"
	"sort"

	"github.com/hupe1980/pointgrid/bvh"
	"github.com/hupe1980/pointgrid/internal/hilbert"
	"github.com/hupe1980/pointgrid/model"
)

// Params carries the knobs individual modes need.
type Params struct {
	// QuantizationBits sets the grid resolution of the tiled mode.
	QuantizationBits int
	// MaxDepth and MinPoints configure BVH construction.
	MaxDepth  int
	MinPoints int
	// DisplayLevel filters flattened BVH nodes to one exact depth,
	// or -1 for all levels.
	DisplayLevel int
}

// Result is the outcome of a projection.
type Result struct {
	// Points and Colors replace the input arrays.
	Points []float64
	Colors []float64
	// Path flags the points as an ordered polyline.
	Path bool
	// Nodes is the flattened BVH node list for BVH modes.
	Nodes []model.NodeDescriptor
	// BVHMode reports that a BVH was built.
	BVHMode bool
	// ShowPoints is false only for the bvh-only mode.
	ShowPoints bool
}

// Project applies mode to the given flat point/color triples. The input
// slices are not modified; colors pass through unchanged except where a
// mode replicates points.
func Project(points, colors []float64, mode Mode, p Params) (*Result, error) {
	res := &Result{
		Points:     points,
		Colors:     colors,
		ShowPoints: true,
	}

	switch mode {
	case Standard:
		// Identity.
	case OrthographicXY:
		res.Points = dropAxis(points, 2)
	case OrthographicXZ:
		res.Points = dropAxis(points, 1)
	case OrthographicYZ:
		res.Points = dropAxis(points, 0)
	case Orthographic3Plane:
		res.Points, res.Colors = threePlane(points, colors)
	case Stereographic:
		res.Points = stereographic(points)
	case Equirectangular:
		res.Points = equirectangular(points)
	case Cylindrical:
		res.Points = cylindrical(points)
	case Lattice2D:
		res.Points = lattice2D(len(points) / 3)
	case Tiled:
		res.Points = tiled(points, p.QuantizationBits)
	case ContinuousPath:
		res.Path = true
	case HilbertCurve:
		res.Points, res.Colors = hilbertReorder(points, colors)
		res.Path = true
	case BVHWithPoints, BVHOnly:
		tree, err := bvh.Build(points, p.MaxDepth, p.MinPoints)
		if err != nil {
			return nil, err
		}
		nodes, err := tree.Flatten(p.DisplayLevel)
		if err != nil {
			return nil, err
		}
		if len(nodes) == 0 {
			// Nothing to draw at the requested level: behave like
			// the standard mode instead of returning an empty scene.
			return res, nil
		}
		res.Nodes = nodes
		res.BVHMode = true
		res.ShowPoints = mode == BVHWithPoints
	}

	return res, nil
}

// dropAxis returns a copy of points with one axis zeroed.
func dropAxis(points []float64, axis int) []float64 {
	out := make([]float64, len(points))
	copy(out, points)
	for i := axis; i < len(out); i += 3 {
		out[i] = 0
	}
	return out
}

// threePlane emits the XY, XZ and YZ projections of every point, in
// that order, replicating the point's color three times.
func threePlane(points, colors []float64) ([]float64, []float64) {
	n := len(points) / 3
	outPoints := make([]float64, 0, 9*n)
	outColors := make([]float64, 0, 9*n)

	for i := 0; i < n; i++ {
		x, y, z := points[3*i], points[3*i+1], points[3*i+2]
		r, g, b := colors[3*i], colors[3*i+1], colors[3*i+2]

		outPoints = append(outPoints,
			x, y, 0,
			x, 0, z,
			0, y, z,
		)
		for j := 0; j < 3; j++ {
			outColors = append(outColors, r, g, b)
		}
	}
	return outPoints, outColors
}

// stereographic normalizes each point onto the unit sphere and projects
// it from the north pole onto the z=0 plane, scaled by 0.5. Points at
// or near the pole collapse to the origin.
func stereographic(points []float64) []float64 {
	out := make([]float64, len(points))
	for i := 0; i < len(points); i += 3 {
		x, y, z := points[i], points[i+1], points[i+2]

		mag := math.Sqrt(x*x + y*y + z*z)
		if mag > 0 {
			x /= mag
			y /= mag
			z /= mag
		}
		if z < 0.999 {
			out[i] = x / (1 - z) * 0.5
			out[i+1] = y / (1 - z) * 0.5
		}
		// Pole singularity (and zero input) stay at the origin.
	}
	return out
}

// equirectangular maps each point to (longitude/π, 2·colatitude/π − 1, 0).
func equirectangular(points []float64) []float64 {
	out := make([]float64, len(points))
	for i := 0; i < len(points); i += 3 {
		x, y, z := points[i], points[i+1], points[i+2]

		r := math.Sqrt(x*x + y*y + z*z)
		if r == 0 {
			continue
		}
		theta := math.Atan2(y, x)
		phi := math.Acos(math.Abs(z) / r)
		out[i] = theta / math.Pi
		out[i+1] = phi/math.Pi*2 - 1
	}
	return out
}

// cylindrical unwraps each point around the y axis: x becomes the
// normalized angle in the xz plane, y is kept, z is dropped.
func cylindrical(points []float64) []float64 {
	out := make([]float64, len(points))
	for i := 0; i < len(points); i += 3 {
		x, y, z := points[i], points[i+1], points[i+2]

		radius := math.Sqrt(x*x + z*z)
		if radius > 0 {
			out[i] = math.Atan2(z, x) / math.Pi
		}
		out[i+1] = y
	}
	return out
}

// lattice2D discards all original coordinates and lays n points on a
// ceil(sqrt(n))-side row-major grid spanning [-1, 1] per axis.
func lattice2D(n int) []float64 {
	out := make([]float64, 3*n)
	if n == 0 {
		return out
	}
	side := int(math.Ceil(math.Sqrt(float64(n))))

	for i := 0; i < n; i++ {
		col := i % side
		row := i / side
		if side > 1 {
			out[3*i] = float64(col)/float64(side-1)*2 - 1
			out[3*i+1] = float64(row)/float64(side-1)*2 - 1
		}
		// side == 1: the single point sits at the origin.
	}
	return out
}

// tiled discretizes coordinates to the quantization grid and tiles the
// z slices into a super-grid of side floor(sqrt(range)), producing a
// flat atlas of the volume.
func tiled(points []float64, bits int) []float64 {
	out := make([]float64, len(points))
	qRange := 1 << uint(bits)
	side := int(math.Sqrt(float64(qRange)))
	maxTiled := float64(side*qRange - 1)

	for i := 0; i < len(points); i += 3 {
		dx := discretize(points[i], bits)
		dy := discretize(points[i+1], bits)
		dz := discretize(points[i+2], bits)

		col := dz % side
		row := dz / side

		out[i] = float64(col*qRange+dx)/maxTiled*2 - 1
		out[i+1] = float64(row*qRange+dy)/maxTiled*2 - 1
	}
	return out
}

// hilbertReorder stable-sorts points by their Hilbert index on a grid
// sized to the point count and returns the reordered originals.
func hilbertReorder(points, colors []float64) ([]float64, []float64) {
	n := len(points) / 3
	if n == 0 {
		return points, colors
	}

	order := int(math.Ceil(math.Log2(math.Cbrt(float64(n)))))
	if order < 2 {
		order = 2
	}
	if order > 8 {
		order = 8
	}

	keys := make([]uint64, n)
	for i := 0; i < n; i++ {
		x := uint32(discretize(points[3*i], order))
		y := uint32(discretize(points[3*i+1], order))
		z := uint32(discretize(points[3*i+2], order))
		keys[i] = hilbert.Encode(x, y, z, order)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return keys[perm[a]] < keys[perm[b]]
	})

	outPoints := make([]float64, len(points))
	outColors := make([]float64, len(colors))
	for dst, src := range perm {
		copy(outPoints[3*dst:3*dst+3], points[3*src:3*src+3])
		copy(outColors[3*dst:3*dst+3], colors[3*src:3*src+3])
	}
	return outPoints, outColors
}

// discretize maps a normalized coordinate in [-1, 1] to a cell index in
// [0, 2^bits - 1], clamping out-of-range values.
func discretize(c float64, bits int) int {
	cell := int(math.Floor((c + 1) * float64(uint(1)<<uint(bits-1))))
	if cell < 0 {
		return 0
	}
	if maxCell := (1 << uint(bits)) - 1; cell > maxCell {
		return maxCell
	}
	return cell
}
