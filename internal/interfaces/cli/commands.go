package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hapkiduki/geoshapes/internal/application/dto"
	"github.com/hapkiduki/geoshapes/internal/application/port"
	"github.com/hapkiduki/geoshapes/internal/domain"
	"github.com/hapkiduki/geoshapes/internal/domain/entity"
	"github.com/hapkiduki/geoshapes/internal/domain/service"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
	"github.com/hapkiduki/geoshapes/internal/infrastructure/config"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --output value.
var ErrUnknownFormat = errors.New("output format must be text, json or yaml")

// ParseFormat validates a report format name.
func ParseFormat(name string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(name)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", domain.NewArgumentError("output", name, ErrUnknownFormat)
}

// Env is the state shared by every subcommand. The root command fills it in
// before any RunE executes.
type Env struct {
	Config *config.Config
	Log    port.Logger
	Out    io.Writer

	// Format is FormatText, FormatJSON or FormatYAML. Empty means text.
	Format string
}

// Structured reports whether reports are written as JSON or YAML.
func (e *Env) Structured() bool {
	return e.Format == FormatJSON || e.Format == FormatYAML
}

// TableOptions returns the table options described by the configuration.
func (e *Env) TableOptions() TableOptions {
	return TableOptions{
		DisplayOptions: e.DisplayOptions(),
		RowLines:       e.Config.Display.RowLines,
	}
}

// DisplayOptions returns the number formatting described by the configuration.
func (e *Env) DisplayOptions() DisplayOptions {
	return DisplayOptions{Compact: e.Config.Display.Compact}
}

// WriteReport encodes v in the structured format.
func (e *Env) WriteReport(v any) error {
	if e.Format == FormatYAML {
		enc := yaml.NewEncoder(e.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(e.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RunDemo builds the configured sample set (or the built-in one) and runs the
// demo report.
func RunDemo(env *Env) error {
	specs := DefaultSampleSet()
	if len(env.Config.Demo.Shapes) > 0 {
		specs = make([]dto.ShapeSpec, 0, len(env.Config.Demo.Shapes))
		for _, s := range env.Config.Demo.Shapes {
			specs = append(specs, dto.ShapeSpec{Kind: s.Kind, Dimensions: s.Dimensions, Unit: s.Unit})
		}
	}

	target, err := valueobject.ParseUnit(env.Config.Demo.Unit)
	if err != nil {
		return fmt.Errorf("demo unit: %w", err)
	}

	demo := NewDemo(env.Log, env.Out, env.TableOptions(), target)
	shapes, err := demo.Build(specs)
	if err != nil {
		return err
	}

	if env.Structured() {
		return env.WriteReport(dto.NewShapeSummaries(shapes))
	}
	return demo.Run(shapes)
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample shapes through every feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDemo(env)
		},
	}
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "convert VALUE FROM TO",
		Short:   "Convert a length between units",
		Example: "  shapes convert 2.5 m cm",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := ParseDimensions(args[:1])
			if err != nil {
				return err
			}
			from, to := valueobject.Unit(args[1]), valueobject.Unit(args[2])

			converted, err := valueobject.Convert(values[0], from, to)
			if err != nil {
				return err
			}
			env.Log.Debug("Length converted", "value", values[0], "from", from, "to", to)

			if env.Structured() {
				return env.WriteReport(dto.ConversionResult{
					Value:     values[0],
					From:      string(from.Normalize()),
					Converted: converted,
					To:        string(to.Normalize()),
				})
			}
			fmt.Fprintf(env.Out, "%s %s = %s %s\n",
				valueobject.FormatNumber(values[0]), from.Normalize(),
				valueobject.FormatNumber(converted), to.Normalize())
			return nil
		},
	}
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(env *Env) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:     "describe KIND DIM...",
		Short:   "Print the dimensions and metrics of one shape",
		Example: "  shapes describe rectangle 10 5 --unit m",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := ParseDimensions(args[1:])
			if err != nil {
				return err
			}
			s, err := dto.ShapeSpec{Kind: args[0], Dimensions: dims, Unit: unit}.Build()
			if err != nil {
				return err
			}

			if env.Structured() {
				return env.WriteReport(dto.NewShapeSummary(s))
			}
			fmt.Fprint(env.Out, Describe(s, env.DisplayOptions()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", string(valueobject.DefaultUnit), "unit label of the dimensions")
	return cmd
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(env *Env) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "compare SHAPE SHAPE",
		Short: "Compare two shapes by area (surface area for solids)",
		Long: `Compare two shapes by their primary metric.

Shapes are written as kind:d1[,d2][:unit]. Metrics are compared as recorded
unless --in names a unit to normalize both shapes to first.`,
		Example: "  shapes compare rectangle:10,5 circle:4\n  shapes compare circle:1:m circle:50:cm --in cm",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes := make([]entity.Shape, 0, 2)
			for _, arg := range args {
				spec, err := ParseShapeSpec(arg)
				if err != nil {
					return err
				}
				s, err := spec.Build()
				if err != nil {
					return err
				}
				shapes = append(shapes, s)
			}

			var (
				c   service.Comparison
				err error
			)
			if in != "" {
				c, err = service.CompareIn(shapes[0], shapes[1], valueobject.Unit(in).Normalize())
			} else {
				c, err = service.Compare(shapes[0], shapes[1])
			}
			if err != nil {
				return err
			}
			if c.UnitMismatch {
				env.Log.Warn("Shapes have different units; pass --in to normalize",
					"first_unit", shapes[0].Unit(), "second_unit", shapes[1].Unit())
			}

			if env.Structured() {
				return env.WriteReport(c)
			}
			fmt.Fprintln(env.Out, c)

			a, aSolid := shapes[0].(entity.Shape3D)
			b, bSolid := shapes[1].(entity.Shape3D)
			if aSolid && bSolid && a.Unit() == b.Unit() {
				ratio, err := service.VolumeRatio(a, b)
				if err != nil {
					return err
				}
				fmt.Fprintf(env.Out, "Volume ratio: %.4f\n", ratio)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "normalize both shapes to this unit before comparing")
	return cmd
}

// NewScaleCommand creates the scale command.
func NewScaleCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "scale SHAPE FACTOR",
		Short:   "Print a copy of a shape with every dimension multiplied by FACTOR",
		Example: "  shapes scale cube:2:cm 1.5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := ParseShapeSpec(args[0])
			if err != nil {
				return err
			}
			factor, err := ParseDimensions(args[1:])
			if err != nil {
				return err
			}
			s, err := spec.Build()
			if err != nil {
				return err
			}
			scaled, err := service.Scale(s, factor[0])
			if err != nil {
				return err
			}

			if env.Structured() {
				return env.WriteReport(dto.NewShapeSummary(scaled))
			}
			fmt.Fprintln(env.Out, scaled)
			return nil
		},
	}
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported length units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := valueobject.SupportedUnits()
			if env.Structured() {
				factors := make(map[valueobject.Unit]float64, len(units))
				for _, u := range units {
					factors[u], _ = valueobject.MeterFactor(u)
				}
				return env.WriteReport(factors)
			}
			for _, u := range units {
				f, _ := valueobject.MeterFactor(u)
				fmt.Fprintf(env.Out, "%-3s %s m\n", u, valueobject.FormatNumber(f))
			}
			return nil
		},
	}
}
