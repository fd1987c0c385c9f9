package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() entity.Report {
	r := 0.63
	jan := time.Date(2011, time.January, 1, 0, 0, 0, 0, time.UTC)
	return entity.Report{
		RunID:       "3f1c2a9e-0000-4000-8000-000000000001",
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Source:      "all_data.csv",
		Rows:        2,
		GrandTotal:  150,
		Trends: []entity.YearTrend{
			{Year: 2011, Months: []entity.MonthlyTotal{{Year: 2011, Month: 1, Date: jan, Count: 150}}},
		},
		DayTypes: []entity.CategoryTotal{
			{Key: "working_day", Label: "Working Day", Total: 100},
			{Key: "weekend_holiday", Label: "Weekend/Holiday", Total: 50},
		},
		Weather: []entity.CategoryTotal{
			{Key: "clear", Label: "Clear", Total: 100},
			{Key: "mist", Label: "Mist", Total: 50},
			{Key: "light_precipitation", Label: "Light Rain/Snow", Total: 0},
			{Key: "heavy_precipitation", Label: "Heavy Rain/Snow", Total: 0},
		},
		Correlation: entity.TemperatureCorrelation{
			Coefficient: &r,
			Slope:       -12.2,
			Intercept:   200,
			N:           2,
			Points:      []entity.TemperaturePoint{{Celsius: 8.2, Count: 100}, {Celsius: 12.3, Count: 50}},
		},
		RenterTypes: []entity.CategoryTotal{
			{Key: "casual", Label: "Casual", Total: 15},
			{Key: "registered", Label: "Registered", Total: 135},
		},
		Quality: entity.QualityReport{Checked: 2},
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 135, G: 206, B: 235, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := NewExportRepository().ExportToCSV(sampleReport(), "bike_report", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".csv"))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "bike_report_"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Section", "Label", "Value"}, records[0])
	assert.Contains(t, records, []string{"Monthly Trend 2011", "January", "150"})
	assert.Contains(t, records, []string{"Working Day vs Weekend/Holiday", "Weekend/Holiday", "50"})
	assert.Contains(t, records, []string{"Weather Condition", "Heavy Rain/Snow", "0"})
	assert.Contains(t, records, []string{"Temperature", "Correlation", "0.63"})
	assert.Contains(t, records, []string{"Casual vs Registered", "Registered", "135"})
}

func TestExportToJSON(t *testing.T) {
	path, err := NewExportRepository().ExportToJSON(sampleReport(), "bike_report", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 150, decoded.GrandTotal)
	require.NotNil(t, decoded.Correlation.Coefficient)
	assert.InDelta(t, 0.63, *decoded.Correlation.Coefficient, 1e-9)
}

func TestExportToJSONUndefinedCorrelation(t *testing.T) {
	report := sampleReport()
	report.Correlation.Coefficient = nil
	path, err := NewExportRepository().ExportToJSON(report, "bike_report", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"coefficient": null`)
}

func TestExportToPDF(t *testing.T) {
	charts := []repository.ChartImage{
		{ID: "day_type", Title: "Total Rentals", PNG: tinyPNG(t)},
		{ID: "weather", Title: "Total Rentals by Weather", PNG: tinyPNG(t)},
		{ID: "renter_type", Title: "Casual vs Registered", PNG: tinyPNG(t)},
	}
	path, err := NewExportRepository().ExportToPDF(sampleReport(), charts, "bike_report", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestChartPagesSkipChartsWithoutPNG(t *testing.T) {
	png := tinyPNG(t)
	charts := []repository.ChartImage{
		{ID: "trend_2011", PNG: png},
		{ID: "trend_2012"},
		{ID: "day_type", PNG: png},
		{ID: "weather", PNG: png},
		{ID: "temperature", PNG: png},
	}

	pages := chartPages(charts)
	require.Len(t, pages, 2)
	ids := func(page []repository.ChartImage) []string {
		out := make([]string, len(page))
		for i, c := range page {
			out[i] = c.ID
		}
		return out
	}
	assert.Equal(t, []string{"trend_2011", "day_type"}, ids(pages[0]))
	assert.Equal(t, []string{"weather", "temperature"}, ids(pages[1]))

	assert.Empty(t, chartPages([]repository.ChartImage{{ID: "weather"}}))
}

func TestExportToPDFPageCountAfterSkippedChart(t *testing.T) {
	png := tinyPNG(t)
	charts := []repository.ChartImage{
		{ID: "trend_2011", Title: "Bike Rental Trend 2011", PNG: png},
		{ID: "trend_2012", Title: "Bike Rental Trend 2012"},
		{ID: "day_type", Title: "Day Type", PNG: png},
		{ID: "weather", Title: "Weather", PNG: png},
		{ID: "renter_type", Title: "Renter Type", PNG: png},
	}
	path, err := NewExportRepository().ExportToPDF(sampleReport(), charts, "bike_report", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Tabelas numa página, quatro gráficos em duas.
	assert.Contains(t, string(data), "/Count 3")
}

func TestExportToXLSX(t *testing.T) {
	path, err := NewExportRepository().ExportToXLSX(sampleReport(), "bike_report", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Monthly Trend", "Day Type", "Weather", "Temperature", "Renter Type"}, f.GetSheetList())

	value, err := f.GetCellValue("Weather", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Clear", value)
	value, err = f.GetCellValue("Weather", "B2")
	require.NoError(t, err)
	assert.Equal(t, "100", value)
	value, err = f.GetCellValue("Renter Type", "B3")
	require.NoError(t, err)
	assert.Equal(t, "135", value)
}

func TestExportCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	charts := []repository.ChartImage{
		{ID: "trend_2011", SVG: []byte("<svg></svg>"), PNG: tinyPNG(t)},
		{ID: "weather", SVG: []byte("<svg></svg>")},
	}

	written, err := NewExportRepository().ExportCharts(charts, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "trend_2011.svg"),
		filepath.Join(dir, "trend_2011.png"),
		filepath.Join(dir, "weather.svg"),
	}, written)

	data, err := os.ReadFile(filepath.Join(dir, "weather.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(data))
}
