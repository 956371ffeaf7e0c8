package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hapkiduki/geoshapes/internal/application/dto"
	"github.com/hapkiduki/geoshapes/internal/interfaces/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{}
	defer a.sync()

	root := a.rootCommand(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if err != nil {
		a.fail(err)
	}
	return out.String(), err
}

func TestRootRunsDemoByDefault(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "1. Shapes:")
	assert.Contains(t, out, "Done\n")
}

func TestSubcommands(t *testing.T) {
	out, err := run(t, "convert", "1", "km", "m")
	require.NoError(t, err)
	assert.Equal(t, "1 km = 1000 m\n", out)

	out, err = run(t, "-o", "json", "describe", "cube", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"volume": 8`)

	out, err = run(t, "-v", "compare", "rectangle:10,5", "circle:4")
	require.NoError(t, err)
	assert.Contains(t, out, "Circle is larger than Rectangle by 0.27 cm²")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
display:
  compact: true
demo:
  unit: mm
  shapes:
    - kind: sphere
      dimensions: [40]
      unit: mm
`), 0o600))

	out, err := run(t, "--config", path, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Created: Sphere(radius=40mm")
	assert.Contains(t, out, "268.08K mm³")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestErrorsAreReturned(t *testing.T) {
	_, err := run(t, "describe", "circle", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")

	_, err = run(t, "bogus")
	assert.Error(t, err)

	_, err = run(t, "-o", "xml", "units")
	assert.ErrorIs(t, err, cli.ErrUnknownFormat)
}

func TestJSONErrorReport(t *testing.T) {
	out, err := run(t, "--output", "json", "convert", "1", "cm", "cubit")
	require.Error(t, err)

	var report dto.ErrorReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Success)
	assert.Equal(t, dto.CodeValidation, report.Error.Code)
	assert.Equal(t, "unit", report.Error.Field)
}

func TestYAMLOutput(t *testing.T) {
	out, err := run(t, "-o", "yaml", "convert", "1", "km", "m")
	require.NoError(t, err)
	assert.Contains(t, out, "converted: 1000\n")
	assert.Contains(t, out, "to: m\n")
}
