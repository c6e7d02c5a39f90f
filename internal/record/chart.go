package record

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"phase-ca/pkg/sims/universe"
)

// ErrTooFewSamples is returned when a chart would have fewer than two points.
var ErrTooFewSamples = errors.New("record: need at least two census samples")

// WriteChart renders live cells, active phase cells and lattice side over
// time as a PNG.
func WriteChart(w io.Writer, history []universe.Census) error {
	if len(history) < 2 {
		return ErrTooFewSamples
	}
	steps := make([]float64, len(history))
	live := make([]float64, len(history))
	phase := make([]float64, len(history))
	side := make([]float64, len(history))
	maxY := 1.0
	for i, c := range history {
		steps[i] = float64(c.Step)
		live[i] = float64(c.Live)
		phase[i] = float64(c.PhaseActive)
		side[i] = float64(c.Side)
		maxY = max(maxY, live[i], phase[i], side[i])
	}
	minX, maxX := steps[0], steps[len(steps)-1]
	if maxX <= minX {
		maxX = minX + 1
	}

	graph := chart.Chart{
		Width:  800,
		Height: 300,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "live",
				XValues: steps,
				YValues: live,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "phase active",
				XValues: steps,
				YValues: phase,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "side",
				XValues: steps,
				YValues: side,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("record: render chart: %w", err)
	}
	return nil
}
