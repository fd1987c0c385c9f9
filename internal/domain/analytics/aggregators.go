// Package analytics derives the dashboard views from the loaded rental records.
// Every function is pure: records are never mutated and results are recomputed on each call.
package analytics

import (
	"sort"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
)

// Category keys.
const (
	KeyWorkingDay         = "working_day"
	KeyWeekendHoliday     = "weekend_holiday"
	KeyClear              = "clear"
	KeyMist               = "mist"
	KeyLightPrecipitation = "light_precipitation"
	KeyHeavyPrecipitation = "heavy_precipitation"
	KeyCasual             = "casual"
	KeyRegistered         = "registered"
)

var weatherCategories = []struct {
	code  int
	key   string
	label string
}{
	{entity.WeatherClear, KeyClear, "Clear"},
	{entity.WeatherMist, KeyMist, "Mist"},
	{entity.WeatherLightPrecipitation, KeyLightPrecipitation, "Light Rain/Snow"},
	{entity.WeatherHeavyPrecipitation, KeyHeavyPrecipitation, "Heavy Rain/Snow"},
}

// GrandTotal sums the rental count of every record.
func GrandTotal(records []entity.RentalRecord) int {
	return sumWhere(records, func(entity.RentalRecord) bool { return true })
}

// MonthlyTrend sums counts by (year, month) and splits the result by calendar year.
// Years and months are returned in ascending order. Both years of the indicator
// are always present; a year without rows has no months.
func MonthlyTrend(records []entity.RentalRecord) []entity.YearTrend {
	type monthKey struct{ year, month int }

	sums := make(map[monthKey]int)
	for _, r := range records {
		sums[monthKey{r.CalendarYear(), r.Month}] += r.Count
	}

	byYear := map[int][]entity.MonthlyTotal{
		entity.BaseYear:     {},
		entity.BaseYear + 1: {},
	}
	for k, count := range sums {
		byYear[k.year] = append(byYear[k.year], entity.MonthlyTotal{
			Year:  k.year,
			Month: k.month,
			Date:  time.Date(k.year, time.Month(k.month), 1, 0, 0, 0, 0, time.UTC),
			Count: count,
		})
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	trends := make([]entity.YearTrend, 0, len(years))
	for _, y := range years {
		months := byYear[y]
		sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
		trends = append(trends, entity.YearTrend{Year: y, Months: months})
	}
	return trends
}

// DayTypeTotals returns the working-day total followed by the weekend/holiday total.
// A row flagged both as working day and holiday is counted in both.
func DayTypeTotals(records []entity.RentalRecord) []entity.CategoryTotal {
	return []entity.CategoryTotal{
		{
			Key:   KeyWorkingDay,
			Label: "Working Day",
			Total: sumWhere(records, func(r entity.RentalRecord) bool { return r.WorkingDay }),
		},
		{
			Key:   KeyWeekendHoliday,
			Label: "Weekend/Holiday",
			Total: sumWhere(records, entity.RentalRecord.WeekendOrHoliday),
		},
	}
}

// WeatherTotals returns one total per weather situation, clear to heavy precipitation.
// Rows with an unknown code are not counted.
func WeatherTotals(records []entity.RentalRecord) []entity.CategoryTotal {
	totals := make([]entity.CategoryTotal, 0, len(weatherCategories))
	for _, c := range weatherCategories {
		code := c.code
		totals = append(totals, entity.CategoryTotal{
			Key:   c.key,
			Label: c.label,
			Total: sumWhere(records, func(r entity.RentalRecord) bool { return r.Weather == code }),
		})
	}
	return totals
}

// RenterTotals sums the casual and registered columns independently.
func RenterTotals(records []entity.RentalRecord) []entity.CategoryTotal {
	var casual, registered int
	for _, r := range records {
		casual += r.Casual
		registered += r.Registered
	}
	return []entity.CategoryTotal{
		{Key: KeyCasual, Label: "Casual", Total: casual},
		{Key: KeyRegistered, Label: "Registered", Total: registered},
	}
}

func sumWhere(records []entity.RentalRecord, pred func(entity.RentalRecord) bool) int {
	total := 0
	for _, r := range records {
		if pred(r) {
			total += r.Count
		}
	}
	return total
}
