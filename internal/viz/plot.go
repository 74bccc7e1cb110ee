package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/convect1d/internal/field"
)

const (
	plotHeight = 12
	plotWidth  = 72
)

// PlotField renders a field as a terminal line chart.
func PlotField(u field.Field, caption string) string {
	return asciigraph.Plot(u,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotPair renders two fields in one chart, typically the initial and final
// state of a run.
func PlotPair(a, b field.Field, caption string) string {
	return asciigraph.PlotMany([][]float64{a, b},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
	)
}
