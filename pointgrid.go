package pointgrid

import (
	"github.com/hupe1980/pointgrid/bvh"
	"github.com/hupe1980/pointgrid/dtype"
	"github.com/hupe1980/pointgrid/model"
	"github.com/hupe1980/pointgrid/projection"
)

// Process decodes a raw point buffer, deduplicates it on the voxel grid
// and applies the configured projection.
//
// The buffer holds consecutive tuples of 3 scalars (position) or 6
// scalars (position plus color), all encoded as dt. Structural and
// parameter errors surface before any decoding starts; a decode failure
// mid-scan returns the partial point set accumulated so far.
func Process(buffer []byte, dt dtype.DataType, optFns ...Option) (*model.Result, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if len(buffer) == 0 {
		return nil, ErrInvalidInput
	}
	if !dt.Valid() {
		return nil, &ErrUnsupportedType{DataType: dt}
	}
	if o.quantizationBits < MinQuantizationBits || o.quantizationBits > MaxQuantizationBits {
		return nil, &ErrInvalidParameter{Name: "quantizationBits", Value: o.quantizationBits}
	}
	if o.tupleArity != 3 && o.tupleArity != 6 {
		return nil, &ErrInvalidParameter{Name: "tupleArity", Value: o.tupleArity}
	}
	if !o.mode.Valid() {
		return nil, &ErrInvalidParameter{Name: "projectionMode", Value: int(o.mode)}
	}
	if o.mode.IsBVH() {
		if o.maxDepth < 1 || o.maxDepth > bvh.MaxDepthLimit {
			return nil, &ErrInvalidParameter{Name: "maxDepth", Value: o.maxDepth}
		}
		if o.minPoints < 1 {
			return nil, &ErrInvalidParameter{Name: "minPoints", Value: o.minPoints}
		}
		if o.displayLevel < -1 {
			return nil, &ErrInvalidParameter{Name: "displayLevel", Value: o.displayLevel}
		}
	}

	tupleBytes := dt.Size() * o.tupleArity
	if len(buffer) < tupleBytes {
		return nil, &ErrBufferTooSmall{Need: tupleBytes, Got: len(buffer)}
	}

	logger := o.logger.WithDataType(dt).WithMode(o.mode)

	sc := scan(buffer, dt, &o)
	logger.Debug("scan complete",
		"scanned", sc.scanned,
		"emitted", len(sc.points)/3,
		"duplicates", sc.duplicates,
	)

	proj, err := projection.Project(sc.points, sc.colors, o.mode, projection.Params{
		QuantizationBits: o.quantizationBits,
		MaxDepth:         o.maxDepth,
		MinPoints:        o.minPoints,
		DisplayLevel:     o.displayLevel,
	})
	if err != nil {
		return nil, err
	}

	res := &model.Result{
		Points:     proj.Points,
		Colors:     proj.Colors,
		NumPoints:  len(proj.Points) / 3,
		Path:       proj.Path,
		Nodes:      proj.Nodes,
		BVHMode:    proj.BVHMode,
		ShowPoints: proj.ShowPoints,
		Scanned:    sc.scanned,
		Duplicates: sc.duplicates,
		Occupancy:  sc.occupied,
	}
	logger.WithNumPoints(res.NumPoints).Debug("process complete", "bvh_nodes", len(res.Nodes))
	return res, nil
}
