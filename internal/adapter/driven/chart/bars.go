package chart

import (
	"bytes"
	"fmt"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pixelsToLength converte pixels (96 dpi) para unidades do gonum/plot.
func pixelsToLength(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

// renderBars desenha um gráfico de barras com uma cor por barra, grade
// horizontal e o valor de cada barra escrito acima dela.
func renderBars(spec entity.ChartSpec, format repository.ChartFormat) ([]byte, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	labels := make([]string, len(spec.Points))
	valuePositions := make(plotter.XYs, len(spec.Points))
	valueLabels := make([]string, len(spec.Points))

	for i, pt := range spec.Points {
		bar, err := plotter.NewBarChart(plotter.Values{pt.Value}, vg.Points(48))
		if err != nil {
			return nil, fmt.Errorf("error building bar %q: %w", pt.Label, err)
		}
		bar.XMin = float64(i)
		bar.Color = colorAt(spec, i)
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)

		labels[i] = pt.Label
		valuePositions[i] = plotter.XY{X: float64(i), Y: pt.Value}
		valueLabels[i] = fmt.Sprintf("%.0f", pt.Value)
	}

	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Max = upperBound(spec.Points)

	values, err := plotter.NewLabels(plotter.XYLabels{XYs: valuePositions, Labels: valueLabels})
	if err != nil {
		return nil, fmt.Errorf("error building value labels: %w", err)
	}
	for i := range values.TextStyle {
		values.TextStyle[i].XAlign = draw.XCenter
		values.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(values)

	wt, err := p.WriterTo(pixelsToLength(spec.Width), pixelsToLength(spec.Height), string(format))
	if err != nil {
		return nil, fmt.Errorf("error creating %s canvas: %w", format, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("error rendering chart %q: %w", spec.Title, err)
	}
	return buf.Bytes(), nil
}
