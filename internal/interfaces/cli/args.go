package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hapkiduki/geoshapes/internal/application/dto"
	"github.com/hapkiduki/geoshapes/internal/domain"
)

// ErrMalformedSpec is returned for a shape argument that is not kind:dims[:unit].
var ErrMalformedSpec = errors.New("shape must be written as kind:d1[,d2][:unit]")

// ParseShapeSpec parses a command-line shape such as "rectangle:10,5:cm" or
// "sphere:1.5".
func ParseShapeSpec(arg string) (dto.ShapeSpec, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return dto.ShapeSpec{}, domain.NewArgumentError("shape", arg, ErrMalformedSpec)
	}

	dims, err := ParseDimensions(strings.Split(parts[1], ","))
	if err != nil {
		return dto.ShapeSpec{}, err
	}

	spec := dto.ShapeSpec{Kind: parts[0], Dimensions: dims}
	if len(parts) == 3 {
		spec.Unit = parts[2]
	}
	return spec, nil
}

// ParseDimensions parses numeric arguments.
func ParseDimensions(args []string) ([]float64, error) {
	dims := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, domain.NewArgumentError("dimension", a, err)
		}
		dims = append(dims, v)
	}
	return dims, nil
}
