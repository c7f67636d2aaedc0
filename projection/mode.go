package projection

import (
	"fmt"
)

// Mode selects the transform applied to a deduplicated point set.
type Mode uint8

const (
	// Standard leaves the point set unchanged.
	Standard Mode = iota
	// OrthographicXY zeroes z, keeping x and y.
	OrthographicXY
	// OrthographicXZ zeroes y, keeping x and z.
	OrthographicXZ
	// OrthographicYZ zeroes x, keeping y and z.
	OrthographicYZ
	// Orthographic3Plane emits all three plane projections per point.
	Orthographic3Plane
	// Stereographic projects unit-sphere points from the north pole.
	Stereographic
	// Equirectangular unwraps points into longitude/latitude.
	Equirectangular
	// Cylindrical unwraps points around the y axis.
	Cylindrical
	// Lattice2D discards coordinates and lays points on a square grid.
	Lattice2D
	// Tiled flattens the grid into z-indexed tiles of a super-grid.
	Tiled
	// ContinuousPath keeps coordinates but flags the set as a polyline.
	ContinuousPath
	// HilbertCurve reorders points along a space-filling curve.
	HilbertCurve
	// BVHWithPoints builds a BVH and keeps the points drawable.
	BVHWithPoints
	// BVHOnly builds a BVH and suppresses point rendering.
	BVHOnly

	numModes
)

var modeNames = [numModes]string{
	Standard:           "standard",
	OrthographicXY:     "orthographic-xy",
	OrthographicXZ:     "orthographic-xz",
	OrthographicYZ:     "orthographic-yz",
	Orthographic3Plane: "orthographic-3plane",
	Stereographic:      "stereographic",
	Equirectangular:    "equirectangular",
	Cylindrical:        "cylindrical",
	Lattice2D:          "lattice-2d",
	Tiled:              "tiled",
	ContinuousPath:     "continuous-path",
	HilbertCurve:       "hilbert-curve",
	BVHWithPoints:      "bvh-with-points",
	BVHOnly:            "bvh-only",
}

// Valid reports whether m is a known Mode.
func (m Mode) Valid() bool {
	return m < numModes
}

// IsBVH reports whether m requests bounding-volume-hierarchy
// construction.
func (m Mode) IsBVH() bool {
	return m == BVHWithPoints || m == BVHOnly
}

// String returns the wire name of m.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode resolves a wire name like "hilbert-curve" to its Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("projection: unknown mode %q", s)
}
