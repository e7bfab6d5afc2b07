package renderer

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/canhoto/carteira"
)

// ClassDistributionChart renders the class allocation as a PNG donut chart.
func ClassDistributionChart(w io.Writer, classes []carteira.ClassShare) error {
	var values []chart.Value
	for _, c := range classes {
		if c.CurrentValue.IsZero() {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", c.Class, Pct(c.Pct)),
			Value: c.CurrentValue.InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("no positions to chart")
	}

	graph := chart.DonutChart{
		Title:  "Allocation by Class",
		Width:  600,
		Height: 400,
		Values: values,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
