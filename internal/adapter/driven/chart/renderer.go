// Package chart renders dashboard chart specs as SVG or PNG images.
// Line and scatter charts are drawn with go-chart; bar charts with value labels use gonum/plot.
package chart

import (
	"fmt"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 960
	defaultHeight = 480
)

var defaultColors = []string{"#87CEEB", "#FFA500", "#90EE90", "#FF0000"}

// Renderer implementa o ChartRepository.
type Renderer struct{}

// NewChartRepository cria um novo Renderer.
func NewChartRepository() repository.ChartRepository {
	return &Renderer{}
}

// Render desenha o gráfico no formato pedido.
func (r *Renderer) Render(spec entity.ChartSpec, format repository.ChartFormat) ([]byte, error) {
	if format != repository.FormatSVG && format != repository.FormatPNG {
		return nil, fmt.Errorf("%w: format %q", types.ErrUnsupportedChart, format)
	}
	if len(spec.Points) == 0 && spec.Kind != entity.ChartLine {
		return nil, fmt.Errorf("chart %s has no data points", spec.ID)
	}
	if spec.Width <= 0 {
		spec.Width = defaultWidth
	}
	if spec.Height <= 0 {
		spec.Height = defaultHeight
	}

	switch spec.Kind {
	case entity.ChartLine:
		return renderLine(spec, format)
	case entity.ChartScatter:
		return renderScatter(spec, format)
	case entity.ChartBar:
		return renderBars(spec, format)
	default:
		return nil, fmt.Errorf("%w: kind %q", types.ErrUnsupportedChart, spec.Kind)
	}
}

// colorAt devolve a cor da série i, caindo na paleta padrão.
func colorAt(spec entity.ChartSpec, i int) drawing.Color {
	if i < len(spec.Colors) && spec.Colors[i] != "" {
		return drawing.ColorFromHex(trimHash(spec.Colors[i]))
	}
	return drawing.ColorFromHex(trimHash(defaultColors[i%len(defaultColors)]))
}

func trimHash(hex string) string {
	if len(hex) > 0 && hex[0] == '#' {
		return hex[1:]
	}
	return hex
}

func maxValue(points []entity.ChartPoint) float64 {
	m := 0.0
	for _, p := range points {
		if p.Value > m {
			m = p.Value
		}
	}
	return m
}

// upperBound leaves headroom above the tallest value so labels and dots stay inside the frame.
func upperBound(points []entity.ChartPoint) float64 {
	m := maxValue(points)
	if m <= 0 {
		return 1
	}
	return m * 1.15
}
