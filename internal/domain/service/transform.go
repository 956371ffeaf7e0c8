package service

import (
	"math"

	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/entity"
)

// Scale returns a new shape with every dimension multiplied by factor.
// The input shape is left untouched.
//
// Returns:
//   - entity.Shape: the scaled copy, same kind and unit
//   - error: entity.ErrInvalidScaleFactor or a dimension validation error
func Scale(s entity.Shape, factor float64) (entity.Shape, error) {
	if _, err := entity.PrimaryMetric(s); err != nil {
		return nil, err
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return nil, domain.NewValidationError("factor", factor, entity.ErrInvalidScaleFactor)
	}

	dims := entity.Dimensions(s)
	for i := range dims {
		dims[i] *= factor
	}
	return entity.New(s.Kind(), s.Unit(), dims...)
}

// VolumeRatio returns a.Volume() / b.Volume(), or +Inf when b has no volume.
// Units are not normalized.
func VolumeRatio(a, b entity.Shape3D) (float64, error) {
	for _, s := range []entity.Shape3D{a, b} {
		if _, err := entity.PrimaryMetric(s); err != nil {
			return 0, err
		}
	}
	v2 := b.Volume()
	if v2 == 0 {
		return math.Inf(1), nil
	}
	return a.Volume() / v2, nil
}
