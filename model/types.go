package model

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// NodeDescriptor describes one flattened BVH node for rendering or
// inspection: an axis-aligned box given by center and full extent, and
// a depth-derived color.
type NodeDescriptor struct {
	Center [3]float64
	Size   [3]float64
	Color  [3]float64
}

// String returns a compact representation for diagnostics.
func (n NodeDescriptor) String() string {
	return fmt.Sprintf("Node(center=%.3v size=%.3v)", n.Center, n.Size)
}

// Result is the output of a pipeline run.
type Result struct {
	// Points holds flat (x, y, z) triples.
	Points []float64
	// Colors holds flat (r, g, b) triples, parallel to Points.
	Colors []float64
	// NumPoints is len(Points)/3.
	NumPoints int

	// Path marks the points as an ordered polyline: consumers should
	// draw connecting segments between consecutive points.
	Path bool

	// Nodes is the flattened BVH node list for BVH modes, nil otherwise.
	Nodes []NodeDescriptor
	// BVHMode reports whether a BVH was built for this result.
	BVHMode bool
	// ShowPoints reports whether the points themselves should be drawn.
	// It is false only for bvh-only results.
	ShowPoints bool

	// Scanned and Duplicates count the tuples visited and the tuples
	// dropped into an already-occupied cell during the dedup scan.
	Scanned    int
	Duplicates int

	// Occupancy is the set of occupied voxel keys, present only when
	// requested. Keys pack the per-axis cell indices of the dedup grid.
	Occupancy *roaring.Bitmap
}
