package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("d3d3d3"),
	StrokeWidth: 1,
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

// renderLine desenha a tendência mensal como série temporal com marcadores.
// Sem pontos, desenha apenas o eixo de janeiro a dezembro.
func renderLine(spec entity.ChartSpec, format repository.ChartFormat) ([]byte, error) {
	empty := len(spec.Points) == 0
	if empty {
		spec.Points = monthAxis()
	}

	xs := make([]time.Time, len(spec.Points))
	ys := make([]float64, len(spec.Points))
	ticks := make([]chart.Tick, len(spec.Points))
	for i, p := range spec.Points {
		xs[i] = p.Date
		ys[i] = p.Value
		ticks[i] = chart.Tick{Value: chart.TimeToFloat64(p.Date), Label: p.Label}
	}

	xAxis := chart.XAxis{
		Name:           spec.XLabel,
		Ticks:          ticks,
		GridMajorStyle: gridStyle,
		TickPosition:   chart.TickPositionUnderTick,
	}
	if len(xs) == 1 {
		// go-chart rejects a zero-width x range.
		center := chart.TimeToFloat64(xs[0])
		span := chart.TimeToFloat64(xs[0].AddDate(0, 0, 15)) - center
		xAxis.Range = &chart.ContinuousRange{Min: center - span, Max: center + span}
	}

	lineColor := colorAt(spec, 0)
	lineStyle := chart.Style{
		StrokeColor: lineColor,
		StrokeWidth: 2,
		DotColor:    lineColor,
		DotWidth:    4,
	}
	if empty {
		lineStyle = chart.Style{StrokeWidth: chart.Disabled}
	}
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      spec.Width,
		Height:     spec.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20}},
		XAxis:      xAxis,
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			ValueFormatter: countFormatter,
			GridMajorStyle: gridStyle,
			Range:          &chart.ContinuousRange{Min: 0, Max: upperBound(spec.Points)},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    spec.Title,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle,
			},
		},
	}

	return renderChart(ch, format)
}

// monthAxis devolve os doze meses com valor zero. Só os rótulos dos meses aparecem no gráfico.
func monthAxis() []entity.ChartPoint {
	points := make([]entity.ChartPoint, 12)
	for i := range points {
		d := time.Date(entity.BaseYear, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		points[i] = entity.ChartPoint{Label: d.Format("Jan"), Date: d}
	}
	return points
}

// renderScatter desenha os pontos de temperatura e a reta de tendência por mínimos quadrados.
func renderScatter(spec entity.ChartSpec, format repository.ChartFormat) ([]byte, error) {
	xs := make([]float64, len(spec.Points))
	ys := make([]float64, len(spec.Points))
	minX, maxX := spec.Points[0].X, spec.Points[0].X
	for i, p := range spec.Points {
		xs[i] = p.X
		ys[i] = p.Value
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}

	points := chart.ContinuousSeries{
		Name:    "Rentals",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    3,
			DotColor:    colorAt(spec, 0).WithAlpha(178),
		},
	}

	xAxis := chart.XAxis{
		Name:           spec.XLabel,
		GridMajorStyle: gridStyle,
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.0f", f)
			}
			return ""
		},
	}

	series := []chart.Series{points}
	if maxX > minX {
		series = append(series, &chart.LinearRegressionSeries{
			Name:        "Trend",
			InnerSeries: points,
			Style: chart.Style{
				StrokeColor: colorAt(spec, 1),
				StrokeWidth: 2,
			},
		})
	} else {
		xAxis.Range = &chart.ContinuousRange{Min: minX - 1, Max: maxX + 1}
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      spec.Width,
		Height:     spec.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20}},
		XAxis:      xAxis,
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			ValueFormatter: countFormatter,
			GridMajorStyle: gridStyle,
			Range:          &chart.ContinuousRange{Min: 0, Max: upperBound(spec.Points)},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return renderChart(ch, format)
}

func renderChart(ch chart.Chart, format repository.ChartFormat) ([]byte, error) {
	provider := chart.SVG
	if format == repository.FormatPNG {
		provider = chart.PNG
	}

	var buf bytes.Buffer
	if err := ch.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("error rendering chart %q: %w", ch.Title, err)
	}
	return buf.Bytes(), nil
}
