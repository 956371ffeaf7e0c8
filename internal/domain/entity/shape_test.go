package entity

import (
	"math"
	"testing"

	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleFormulas(t *testing.T) {
	for _, dims := range [][2]float64{{10, 5}, {3, 7}, {0.5, 0.25}, {1e3, 2e-3}} {
		w, h := dims[0], dims[1]
		r, err := NewRectangle(w, h, valueobject.UnitCentimeter)
		require.NoError(t, err)

		assert.Equal(t, w*h, r.Area())
		assert.Equal(t, 2*(w+h), r.Perimeter())
		assert.InDelta(t, math.Sqrt(w*w+h*h), r.Diagonal(), 1e-12)
	}
}

func TestCircleFormulas(t *testing.T) {
	for _, radius := range []float64{0.1, 1, 4, 7, 2.5} {
		c, err := NewCircle(radius, valueobject.UnitCentimeter)
		require.NoError(t, err)

		assert.InDelta(t, math.Pi*radius*radius, c.Area(), 1e-9)
		assert.InDelta(t, 2*math.Pi*radius, c.Perimeter(), 1e-9)
		assert.Equal(t, 2*radius, c.Diameter())
	}
}

func TestCubeFormulas(t *testing.T) {
	for _, side := range []float64{0.5, 2, 5} {
		c, err := NewCube(side, valueobject.UnitMeter)
		require.NoError(t, err)

		assert.InDelta(t, math.Pow(side, 3), c.Volume(), 1e-12)
		assert.InDelta(t, 6*math.Pow(side, 2), c.SurfaceArea(), 1e-12)
	}
}

func TestSphereFormulas(t *testing.T) {
	for _, radius := range []float64{0.5, 1.5, 3, 4} {
		s, err := NewSphere(radius, valueobject.UnitMeter)
		require.NoError(t, err)

		assert.InDelta(t, 4*math.Pi*radius*radius, s.SurfaceArea(), 1e-9)
		assert.InDelta(t, (4.0/3.0)*math.Pi*math.Pow(radius, 3), s.Volume(), 1e-9)
		assert.Equal(t, 2*radius, s.Diameter())
	}
}

func TestConstructionGuard(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
	}{
		{"rectangle zero width", func() error { _, err := NewRectangle(0, 5, ""); return err }},
		{"rectangle negative width", func() error { _, err := NewRectangle(-1, 5, ""); return err }},
		{"rectangle zero height", func() error { _, err := NewRectangle(5, 0, ""); return err }},
		{"circle zero radius", func() error { _, err := NewCircle(0, ""); return err }},
		{"cube negative side", func() error { _, err := NewCube(-3, ""); return err }},
		{"sphere zero radius", func() error { _, err := NewSphere(0, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNonPositiveDimension)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestConstructionRejectsNonFinite(t *testing.T) {
	_, err := NewCircle(math.NaN(), "")
	assert.ErrorIs(t, err, ErrNonFiniteDimension)
	assert.True(t, domain.IsArgumentError(err))

	_, err = NewRectangle(1, math.Inf(1), "")
	assert.True(t, domain.IsArgumentError(err))
}

func TestDefaultUnit(t *testing.T) {
	c, err := NewCircle(1, "")
	require.NoError(t, err)
	assert.Equal(t, valueobject.UnitCentimeter, c.Unit())
}

func TestSettersRevalidate(t *testing.T) {
	r, err := NewRectangle(10, 5, valueobject.UnitCentimeter)
	require.NoError(t, err)

	assert.ErrorIs(t, r.SetWidth(0), ErrNonPositiveDimension)
	assert.ErrorIs(t, r.SetHeight(-2), ErrNonPositiveDimension)
	assert.Equal(t, 10.0, r.Width())
	assert.Equal(t, 5.0, r.Height())

	require.NoError(t, r.SetWidth(4))
	require.NoError(t, r.SetHeight(2))
	assert.Equal(t, 8.0, r.Area())

	c, _ := NewCircle(1, "")
	assert.Error(t, c.SetRadius(0))
	require.NoError(t, c.SetRadius(2))
	assert.InDelta(t, 4*math.Pi, c.Area(), 1e-12)

	cube, _ := NewCube(1, "")
	assert.Error(t, cube.SetSide(-1))
	require.NoError(t, cube.SetSide(3))
	assert.InDelta(t, 27, cube.Volume(), 1e-12)

	s, _ := NewSphere(1, "")
	assert.Error(t, s.SetRadius(math.NaN()))
	assert.Equal(t, 1.0, s.Radius())
}

func TestSetUnitAcceptsAnyLabel(t *testing.T) {
	r, err := NewRectangle(1, 2, valueobject.UnitMeter)
	require.NoError(t, err)

	r.SetUnit("parsec")
	assert.Equal(t, valueobject.Unit("parsec"), r.Unit())
	assert.Equal(t, 2.0, r.Area())
}

func TestConvertUnits(t *testing.T) {
	cube, err := NewCube(2, valueobject.UnitMeter)
	require.NoError(t, err)
	require.NoError(t, cube.ConvertUnits(100, valueobject.UnitCentimeter))
	assert.Equal(t, 200.0, cube.Side())
	assert.Equal(t, valueobject.UnitCentimeter, cube.Unit())
	assert.Equal(t, 200.0*200.0*200.0, cube.Volume())
	assert.Equal(t, 6*200.0*200.0, cube.SurfaceArea())

	sphere, err := NewSphere(1.5, valueobject.UnitMeter)
	require.NoError(t, err)
	require.NoError(t, sphere.ConvertUnits(100, valueobject.UnitCentimeter))
	assert.Equal(t, 150.0, sphere.Radius())
	assert.Equal(t, valueobject.UnitCentimeter, sphere.Unit())
	assert.InDelta(t, 4*math.Pi*150*150, sphere.SurfaceArea(), 1e-6)
}

func TestConvertUnitsRejectsBadFactor(t *testing.T) {
	cube, err := NewCube(2, valueobject.UnitMeter)
	require.NoError(t, err)

	for _, f := range []float64{0, -100, math.NaN()} {
		err := cube.ConvertUnits(f, valueobject.UnitCentimeter)
		assert.ErrorIs(t, err, ErrInvalidScaleFactor)
	}
	assert.Equal(t, 2.0, cube.Side())
	assert.Equal(t, valueobject.UnitMeter, cube.Unit())
}

func TestPrimaryMetric(t *testing.T) {
	r, _ := NewRectangle(10, 5, "")
	m, err := PrimaryMetric(r)
	require.NoError(t, err)
	assert.Equal(t, 50.0, m)

	c, _ := NewCube(2, "")
	m, err = PrimaryMetric(c)
	require.NoError(t, err)
	assert.Equal(t, 24.0, m)

	_, err = PrimaryMetric(nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedShape)

	var nilRect *Rectangle
	_, err = PrimaryMetric(nilRect)
	assert.ErrorIs(t, err, domain.ErrUnsupportedShape)
}

func TestEqualityAndOrdering(t *testing.T) {
	rect, _ := NewRectangle(10, 5, "")
	circle, _ := NewCircle(4, "")
	// 6 * side² == 50
	cube, _ := NewCube(math.Sqrt(50.0/6.0), "")

	assert.True(t, Less(rect, circle))
	assert.True(t, Greater(circle, rect))
	assert.False(t, Equal(rect, circle))

	assert.True(t, Equal(rect, cube))
	assert.False(t, Less(rect, cube) && Greater(rect, cube))

	assert.False(t, Equal(rect, nil))
	assert.False(t, Less(nil, rect))
}

func TestEqualityIgnoresUnits(t *testing.T) {
	a, _ := NewCircle(1, valueobject.UnitCentimeter)
	b, _ := NewCircle(1, valueobject.UnitMeter)
	assert.True(t, Equal(a, b))
}

func TestString(t *testing.T) {
	r, _ := NewRectangle(10, 5, "cm")
	assert.Equal(t, "Rectangle(width=10cm, height=5cm, area=50.00cm², perimeter=30.00cm)", r.String())

	c, _ := NewCircle(4, "cm")
	assert.Equal(t, "Circle(radius=4cm, area=50.27cm², circumference=25.13cm)", c.String())

	cube, _ := NewCube(5, "cm")
	assert.Equal(t, "Cube(side=5cm, volume=125.00cm³, surface_area=150.00cm²)", cube.String())

	s, _ := NewSphere(4, "cm")
	assert.Equal(t, "Sphere(radius=4cm, volume=268.08cm³, surface_area=201.06cm²)", s.String())
}
