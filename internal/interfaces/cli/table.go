package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/hapkiduki/geoshapes/internal/application/dto"
	"github.com/hapkiduki/geoshapes/internal/domain/valueobject"
)

// TableOptions controls the summary table layout.
type TableOptions struct {
	DisplayOptions

	// RowLines draws a separator after every row (grid style).
	RowLines bool
}

// SummaryHeaders are the column titles of the summary table.
var SummaryHeaders = []string{"Shape", "Area", "Perimeter", "Volume"}

// SummaryRows converts summaries into table cells. The Area column holds the
// surface area of 3D shapes; missing metrics render as "-".
func SummaryRows(summaries []dto.ShapeSummary, opts DisplayOptions) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		u := valueobject.Unit(s.Unit)
		area := "-"
		switch {
		case s.Area != nil:
			area = FormatMetric(*s.Area, opts) + " " + u.Squared()
		case s.SurfaceArea != nil:
			area = FormatMetric(*s.SurfaceArea, opts) + " " + u.Squared()
		}
		perimeter := "-"
		if s.Perimeter != nil {
			perimeter = FormatMetric(*s.Perimeter, opts) + " " + string(u)
		}
		volume := "-"
		if s.Volume != nil {
			volume = FormatMetric(*s.Volume, opts) + " " + u.Cubed()
		}
		rows = append(rows, []string{s.Kind, area, perimeter, volume})
	}
	return rows
}

// RenderTable writes the summary table to w.
func RenderTable(w io.Writer, summaries []dto.ShapeSummary, opts TableOptions) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(SummaryHeaders)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(opts.RowLines)
	table.AppendBulk(SummaryRows(summaries, opts.DisplayOptions))
	table.Render()
}
