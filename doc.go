// Package pointgrid turns raw binary buffers of numeric tuples into
// deduplicated, optionally re-projected point clouds.
//
// The pipeline decodes each tuple according to a declared scalar
// encoding (integers, fp32, fp16, bf16 and two fp8 variants), normalizes
// values into [-1, 1], deduplicates points on a voxel grid and applies
// one of a set of geometric projections: plane projections, spherical
// and cylindrical unwraps, grid layouts, Hilbert-curve reordering and
// bounding-volume-hierarchy construction.
//
// # Quick Start
//
//	res, err := pointgrid.Process(buf, dtype.Int16,
//	    pointgrid.WithQuantizationBits(6),
//	    pointgrid.WithTupleArity(6),
//	    pointgrid.WithMode(projection.HilbertCurve),
//	)
//
// res.Points and res.Colors are flat (x, y, z) / (r, g, b) triples ready
// for a renderer; BVH modes additionally carry res.Nodes, a flattened
// list of box descriptors.
//
// # Ingestion
//
// Buffers can come from anywhere; the blobstore subpackages provide
// memory, local (mmap), S3 and MinIO sources, and LoadBuffer
// transparently decompresses zstd, lz4 and gzip framed payloads:
//
//	store := blobstore.NewLocalStore("./data")
//	buf, _ := pointgrid.LoadBuffer(ctx, store, "scan-042.bin")
//	res, _ := pointgrid.Process(buf, dtype.Float16)
//
// The pipeline is synchronous and single-threaded; each call owns its
// working memory, so concurrent Process calls on different buffers are
// safe.
package pointgrid
