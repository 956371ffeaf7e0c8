package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/entity"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
	"github.com/hapkiduki/geoshapes/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() (*Env, *bytes.Buffer, *recordingLogger) {
	var buf bytes.Buffer
	log := newRecordingLogger()
	cfg := &config.Config{
		Display: config.DisplayConfig{RowLines: true},
		Demo:    config.DemoConfig{Unit: "m"},
	}
	return &Env{Config: cfg, Log: log, Out: &buf}, &buf, log
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func TestConvertCommand(t *testing.T) {
	env, out, _ := testEnv()
	require.NoError(t, execute(t, NewConvertCommand(env), "1", "KM", "m"))
	assert.Equal(t, "1 km = 1000 m\n", out.String())

	env, out, _ = testEnv()
	env.Format = FormatJSON
	require.NoError(t, execute(t, NewConvertCommand(env), "1", "km", "m"))
	var res struct {
		Converted float64 `json:"converted"`
		To        string  `json:"to"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 1000.0, res.Converted)
	assert.Equal(t, "m", res.To)

	env, _, _ = testEnv()
	err := execute(t, NewConvertCommand(env), "1", "parsec", "m")
	assert.ErrorIs(t, err, valueobject.ErrUnknownUnit)

	err = execute(t, NewConvertCommand(env), "abc", "cm", "m")
	assert.True(t, domain.IsArgumentError(err))

	assert.Error(t, execute(t, NewConvertCommand(env), "1", "cm"))
}

func TestDescribeCommand(t *testing.T) {
	env, out, _ := testEnv()
	require.NoError(t, execute(t, NewDescribeCommand(env), "Rectangle", "10", "5", "--unit", "m"))
	assert.Contains(t, out.String(), "Shape: Rectangle\n  Width: 10m\n")

	env, _, _ = testEnv()
	err := execute(t, NewDescribeCommand(env), "circle", "0")
	assert.ErrorIs(t, err, entity.ErrNonPositiveDimension)

	err = execute(t, NewDescribeCommand(env), "rectangle", "1")
	assert.ErrorIs(t, err, entity.ErrDimensionCount)

	err = execute(t, NewDescribeCommand(env), "hexagon", "1")
	assert.ErrorIs(t, err, entity.ErrUnknownKind)
}

func TestCompareCommand(t *testing.T) {
	env, out, log := testEnv()
	require.NoError(t, execute(t, NewCompareCommand(env), "rectangle:10,5", "circle:4"))
	assert.Equal(t, "Circle is larger than Rectangle by 0.27 cm²\n", out.String())
	assert.Empty(t, log.levels("warn"))

	env, out, log = testEnv()
	require.NoError(t, execute(t, NewCompareCommand(env), "circle:1:m", "circle:50:cm"))
	assert.Contains(t, out.String(), "units²")
	assert.Len(t, log.levels("warn"), 1)

	env, out, log = testEnv()
	require.NoError(t, execute(t, NewCompareCommand(env), "circle:1:m", "circle:50:cm", "--in", "CM"))
	assert.Contains(t, out.String(), "Circle is larger than Circle by")
	assert.Contains(t, out.String(), "cm²")
	assert.Empty(t, log.levels("warn"))

	env, out, _ = testEnv()
	require.NoError(t, execute(t, NewCompareCommand(env), "cube:2", "cube:1"))
	assert.Contains(t, out.String(), "Volume ratio: 8.0000\n")

	env, _, _ = testEnv()
	err := execute(t, NewCompareCommand(env), "circle", "circle:1")
	assert.ErrorIs(t, err, ErrMalformedSpec)
}

func TestScaleCommand(t *testing.T) {
	env, out, _ := testEnv()
	require.NoError(t, execute(t, NewScaleCommand(env), "cube:2:cm", "1.5"))
	assert.Equal(t, "Cube(side=3cm, volume=27.00cm³, surface_area=54.00cm²)\n", out.String())

	env, _, _ = testEnv()
	err := execute(t, NewScaleCommand(env), "cube:2:cm", "0")
	assert.ErrorIs(t, err, entity.ErrInvalidScaleFactor)
}

func TestUnitsCommand(t *testing.T) {
	env, out, _ := testEnv()
	require.NoError(t, execute(t, NewUnitsCommand(env)))
	assert.Contains(t, out.String(), "mm  0.001 m\n")
	assert.Contains(t, out.String(), "km  1000 m\n")

	env, out, _ = testEnv()
	env.Format = FormatJSON
	require.NoError(t, execute(t, NewUnitsCommand(env)))
	var factors map[string]float64
	require.NoError(t, json.Unmarshal(out.Bytes(), &factors))
	assert.Len(t, factors, 7)
	assert.Equal(t, 0.3048, factors["ft"])
}

func TestRunDemo(t *testing.T) {
	env, out, _ := testEnv()
	require.NoError(t, RunDemo(env))
	assert.Contains(t, out.String(), "Done\n")

	env, out, _ = testEnv()
	env.Format = FormatJSON
	env.Config.Demo.Shapes = []config.ShapeConfig{{Kind: "sphere", Dimensions: []float64{1}, Unit: "m"}}
	require.NoError(t, RunDemo(env))
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Sphere", summaries[0]["kind"])

	env, _, _ = testEnv()
	env.Config.Demo.Unit = "league"
	assert.ErrorIs(t, RunDemo(env), valueobject.ErrUnknownUnit)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{"": FormatText, "TEXT": FormatText, "json": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.True(t, domain.IsArgumentError(err))
}

func TestYAMLReport(t *testing.T) {
	env, out, _ := testEnv()
	env.Format = FormatYAML
	require.NoError(t, execute(t, NewCompareCommand(env), "rectangle:10,5", "circle:4"))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "smaller", got["result"])
	assert.Equal(t, "Rectangle", got["first"])
	assert.Equal(t, false, got["unit_mismatch"])

	env, out, _ = testEnv()
	env.Format = FormatYAML
	require.NoError(t, execute(t, NewDescribeCommand(env), "cube", "2"))
	assert.Contains(t, out.String(), "surface_area: 24\n")
	assert.Contains(t, out.String(), "volume: 8\n")
}
