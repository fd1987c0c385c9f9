package usecase

import (
	"fmt"
	"strconv"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
)

// Cores dos gráficos, na mesma ordem em que aparecem na página.
const (
	colorSkyBlue    = "#87CEEB"
	colorOrange     = "#FFA500"
	colorLightGreen = "#90EE90"
	colorRed        = "#FF0000"
)

// Uma cor por ano: 2011 em azul, 2012 em laranja.
var trendColors = []string{colorSkyBlue, colorOrange}

// Títulos das seções, na ordem de exibição.
const (
	SectionTrend       = "Monthly Rental Trend"
	SectionDayType     = "Working Day vs Weekend/Holiday"
	SectionWeather     = "Rentals by Weather Condition"
	SectionTemperature = "Temperature vs Rentals"
	SectionRenterType  = "Casual vs Registered Rentals"
)

// CorrelationText é a linha impressa na seção de temperatura.
func CorrelationText(c entity.TemperatureCorrelation) string {
	return "Correlation: " + c.Formatted()
}

// BuildSections converte o relatório nas seções do dashboard.
// A ordem é fixa: tendência por ano, tipo de dia, clima, temperatura, tipo de cliente.
func BuildSections(report entity.Report) []entity.Section {
	trend := entity.Section{Title: SectionTrend}
	for i, yt := range report.Trends {
		trend.Charts = append(trend.Charts, trendChart(yt, trendColors[i%len(trendColors)]))
	}

	return []entity.Section{
		trend,
		{
			Title: SectionDayType,
			Charts: []entity.ChartSpec{
				categoryChart("day_type", "Rentals on Working Days vs Weekends/Holidays", "Day Type",
					report.DayTypes, colorSkyBlue, colorOrange),
			},
		},
		{
			Title: SectionWeather,
			Charts: []entity.ChartSpec{
				categoryChart("weather", "Total Rentals by Weather Condition", "Weather Condition",
					report.Weather, colorSkyBlue, colorLightGreen, colorOrange, colorRed),
			},
		},
		{
			Title:  SectionTemperature,
			Text:   CorrelationText(report.Correlation),
			Charts: []entity.ChartSpec{temperatureChart(report.Correlation)},
		},
		{
			Title: SectionRenterType,
			Charts: []entity.ChartSpec{
				categoryChart("renter_type", "Casual vs Registered Rentals", "Renter Type",
					report.RenterTypes, colorSkyBlue, colorLightGreen),
			},
		},
	}
}

// Charts achata as seções na lista de gráficos na ordem de exibição.
func Charts(sections []entity.Section) []entity.ChartSpec {
	var charts []entity.ChartSpec
	for _, s := range sections {
		charts = append(charts, s.Charts...)
	}
	return charts
}

func trendChart(yt entity.YearTrend, color string) entity.ChartSpec {
	points := make([]entity.ChartPoint, len(yt.Months))
	for i, m := range yt.Months {
		points[i] = entity.ChartPoint{
			Label: m.Date.Format("Jan"),
			Date:  m.Date,
			Value: float64(m.Count),
		}
	}
	return entity.ChartSpec{
		ID:     "trend_" + strconv.Itoa(yt.Year),
		Kind:   entity.ChartLine,
		Title:  fmt.Sprintf("Bike Rental Trend %d", yt.Year),
		XLabel: "Month",
		YLabel: "Total Rentals",
		Points: points,
		Colors: []string{color},
	}
}

func categoryChart(id, title, xLabel string, totals []entity.CategoryTotal, colors ...string) entity.ChartSpec {
	points := make([]entity.ChartPoint, len(totals))
	for i, t := range totals {
		points[i] = entity.ChartPoint{Label: t.Label, Value: float64(t.Total)}
	}
	return entity.ChartSpec{
		ID:     id,
		Kind:   entity.ChartBar,
		Title:  title,
		XLabel: xLabel,
		YLabel: "Total Rentals",
		Points: points,
		Colors: colors,
	}
}

func temperatureChart(c entity.TemperatureCorrelation) entity.ChartSpec {
	points := make([]entity.ChartPoint, len(c.Points))
	for i, p := range c.Points {
		points[i] = entity.ChartPoint{X: p.Celsius, Value: float64(p.Count)}
	}
	return entity.ChartSpec{
		ID:     "temperature",
		Kind:   entity.ChartScatter,
		Title:  "Effect of Temperature on Bike Rentals",
		XLabel: "Temperature (Celsius)",
		YLabel: "Total Rentals",
		Points: points,
		Colors: []string{colorSkyBlue, colorRed},
	}
}
