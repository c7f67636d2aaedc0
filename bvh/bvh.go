// Package bvh builds axis-aligned bounding-volume hierarchies over flat
// point arrays.
//
// The tree lives in an arena: nodes are addressed by index and parents
// store child indices, so there is no pointer ownership to manage and
// traversal can be iterative. Splits are top-down at the median of the
// largest-extent axis.
package bvh

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/pointgrid/model"
)

const (
	// MaxDepthLimit bounds the configurable maximum tree depth.
	MaxDepthLimit = 12
)

var (
	// ErrNoPoints is returned when a build is requested with zero points.
	ErrNoPoints = errors.New("bvh: build requires at least one point")

	// ErrMalformedNode indicates an internal tree invariant violation
	// discovered during traversal. It is a programmer error, not a
	// recoverable input error.
	ErrMalformedNode = errors.New("bvh: malformed node")
)

// Node is one arena entry. Left and Right are arena indices, -1 for
// leaves. A node is a leaf iff its depth reached the build's maxDepth or
// its index count dropped to minPoints; otherwise its children partition
// its index set without overlap.
type Node struct {
	Min, Max [3]float64
	Indices  []int
	Depth    int
	Left     int
	Right    int
	Leaf     bool
}

// Tree is an arena-backed BVH. Nodes[0] is the root.
type Tree struct {
	Nodes []Node

	points    []float64
	maxDepth  int
	minPoints int
}

// Build constructs a BVH over flat (x, y, z) point triples.
// maxDepth must be in [1, MaxDepthLimit], minPoints at least 1.
func Build(points []float64, maxDepth, minPoints int) (*Tree, error) {
	numPoints := len(points) / 3
	if numPoints == 0 {
		return nil, ErrNoPoints
	}
	if maxDepth < 1 || maxDepth > MaxDepthLimit {
		return nil, fmt.Errorf("bvh: maxDepth %d outside [1, %d]", maxDepth, MaxDepthLimit)
	}
	if minPoints < 1 {
		return nil, fmt.Errorf("bvh: minPoints %d below 1", minPoints)
	}

	t := &Tree{
		points:    points,
		maxDepth:  maxDepth,
		minPoints: minPoints,
	}

	indices := make([]int, numPoints)
	for i := range indices {
		indices[i] = i
	}
	t.build(indices, 0)
	return t, nil
}

// build appends the node owning indices at the given depth and recurses
// into its halves. It returns the node's arena index.
func (t *Tree) build(indices []int, depth int) int {
	node := Node{
		Min:     [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max:     [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
		Indices: indices,
		Depth:   depth,
		Left:    -1,
		Right:   -1,
	}
	for _, pi := range indices {
		for axis := 0; axis < 3; axis++ {
			v := t.points[3*pi+axis]
			if v < node.Min[axis] {
				node.Min[axis] = v
			}
			if v > node.Max[axis] {
				node.Max[axis] = v
			}
		}
	}

	id := len(t.Nodes)
	t.Nodes = append(t.Nodes, node)

	if depth >= t.maxDepth || len(indices) <= t.minPoints {
		t.Nodes[id].Leaf = true
		return id
	}

	axis := 0
	extent := node.Max[0] - node.Min[0]
	for a := 1; a < 3; a++ {
		if e := node.Max[a] - node.Min[a]; e > extent {
			extent = e
			axis = a
		}
	}

	sort.Slice(indices, func(i, j int) bool {
		return t.points[3*indices[i]+axis] < t.points[3*indices[j]+axis]
	})

	mid := len(indices) / 2
	left := t.build(indices[:mid], depth+1)
	right := t.build(indices[mid:], depth+1)

	// Assign after both recursions: the arena may have been reallocated.
	t.Nodes[id].Left = left
	t.Nodes[id].Right = right
	return id
}

// CountNodes returns the total number of nodes in the tree.
func (t *Tree) CountNodes() int {
	return len(t.Nodes)
}

// MaxDepth returns the depth bound the tree was built with.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Flatten walks the tree pre-order and returns a descriptor per node.
// When displayLevel >= 0 only nodes at exactly that depth are included,
// though the walk still recurses past the others. Each descriptor holds
// the box center, the full extent, and a color whose hue is
// depth/maxDepth.
func (t *Tree) Flatten(displayLevel int) ([]model.NodeDescriptor, error) {
	if len(t.Nodes) == 0 {
		return nil, nil
	}

	out := make([]model.NodeDescriptor, 0, len(t.Nodes))
	var walk func(id int) error
	walk = func(id int) error {
		if id < 0 || id >= len(t.Nodes) {
			return fmt.Errorf("%w: child index %d outside arena of %d", ErrMalformedNode, id, len(t.Nodes))
		}
		n := &t.Nodes[id]
		for axis := 0; axis < 3; axis++ {
			if n.Min[axis] > n.Max[axis] {
				return fmt.Errorf("%w: node %d has no bounds", ErrMalformedNode, id)
			}
		}

		if displayLevel < 0 || n.Depth == displayLevel {
			var d model.NodeDescriptor
			for axis := 0; axis < 3; axis++ {
				d.Center[axis] = (n.Min[axis] + n.Max[axis]) / 2
				d.Size[axis] = n.Max[axis] - n.Min[axis]
			}
			d.Color = depthColor(n.Depth, t.maxDepth)
			out = append(out, d)
		}

		if n.Leaf {
			return nil
		}
		if err := walk(n.Left); err != nil {
			return err
		}
		return walk(n.Right)
	}

	if err := walk(0); err != nil {
		return nil, err
	}
	return out, nil
}

// depthColor maps a node depth to an RGB color with hue depth/maxDepth,
// full saturation and value.
func depthColor(depth, maxDepth int) [3]float64 {
	hue := 0.0
	if maxDepth > 0 {
		hue = float64(depth) / float64(maxDepth)
	}
	if hue >= 1 {
		hue = math.Nextafter(1, 0)
	}

	h := hue * 6
	sector := int(h)
	f := h - float64(sector)
	q := 1 - f

	switch sector {
	case 0:
		return [3]float64{1, f, 0}
	case 1:
		return [3]float64{q, 1, 0}
	case 2:
		return [3]float64{0, 1, f}
	case 3:
		return [3]float64{0, q, 1}
	case 4:
		return [3]float64{f, 0, 1}
	default:
		return [3]float64{1, 0, q}
	}
}
