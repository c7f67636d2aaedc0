// Package model defines the core types exchanged across pointgrid.
//
// # Data Types
//
//   - Result: output of a full pipeline run (points, colors, flags)
//   - NodeDescriptor: a flattened BVH node for downstream consumers
//
// Points and colors are flat arrays of 3-component triples; a Result
// with N points carries 3*N values in each array. Color components are
// in [0, 1], point components in [-1, 1] before projection.
package model
