package chart

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func lineSpec(months int) entity.ChartSpec {
	spec := entity.ChartSpec{ID: "trend_2011", Kind: entity.ChartLine, Title: "Bike Rental Trend 2011", XLabel: "Month", YLabel: "Total Rentals"}
	for m := 1; m <= months; m++ {
		d := time.Date(2011, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		spec.Points = append(spec.Points, entity.ChartPoint{Label: d.Format("January"), Date: d, Value: float64(1000 * m)})
	}
	return spec
}

func barSpec() entity.ChartSpec {
	return entity.ChartSpec{
		ID: "weather", Kind: entity.ChartBar, Title: "Total Rentals by Weather",
		XLabel: "Weather", YLabel: "Total Rentals",
		Points: []entity.ChartPoint{
			{Label: "Clear", Value: 100},
			{Label: "Mist", Value: 50},
			{Label: "Light Rain/Snow", Value: 0},
			{Label: "Heavy Rain/Snow", Value: 0},
		},
		Colors: []string{"#87CEEB", "#90EE90", "#FFA500", "#FF0000"},
	}
}

func scatterSpec() entity.ChartSpec {
	spec := entity.ChartSpec{ID: "temperature", Kind: entity.ChartScatter, Title: "Temperature vs Rentals", XLabel: "Temperature (Celsius)", YLabel: "Rentals"}
	for i := 0; i < 20; i++ {
		spec.Points = append(spec.Points, entity.ChartPoint{X: float64(i) * 1.5, Value: float64(200 + 90*i + (i%3)*40)})
	}
	return spec
}

func TestRenderAllKinds(t *testing.T) {
	renderer := NewChartRepository()
	specs := []entity.ChartSpec{lineSpec(12), lineSpec(1), barSpec(), scatterSpec()}

	for _, spec := range specs {
		svg, err := renderer.Render(spec, repository.FormatSVG)
		require.NoError(t, err, spec.ID)
		assert.Contains(t, string(svg), "<svg", spec.ID)

		png, err := renderer.Render(spec, repository.FormatPNG)
		require.NoError(t, err, spec.ID)
		assert.True(t, bytes.HasPrefix(png, pngMagic), spec.ID)
	}
}

func TestRenderBarsWritesValueLabels(t *testing.T) {
	svg, err := NewChartRepository().Render(barSpec(), repository.FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "Clear")
	assert.Contains(t, string(svg), "100")
}

func TestRenderErrors(t *testing.T) {
	renderer := NewChartRepository()

	_, err := renderer.Render(barSpec(), repository.ChartFormat("gif"))
	assert.True(t, errors.Is(err, types.ErrUnsupportedChart))

	spec := barSpec()
	spec.Kind = entity.ChartKind("pie")
	_, err = renderer.Render(spec, repository.FormatSVG)
	assert.True(t, errors.Is(err, types.ErrUnsupportedChart))

	empty := barSpec()
	empty.Points = nil
	_, err = renderer.Render(empty, repository.FormatSVG)
	assert.Error(t, err)
}

func TestRenderLineWithoutPointsDrawsEmptyAxis(t *testing.T) {
	renderer := NewChartRepository()
	spec := lineSpec(0)
	spec.ID, spec.Title = "trend_2012", "Bike Rental Trend 2012"

	svg, err := renderer.Render(spec, repository.FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "Bike Rental Trend 2012")
	assert.Contains(t, string(svg), "Jan")
	assert.Contains(t, string(svg), "Dec")

	png, err := renderer.Render(spec, repository.FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
