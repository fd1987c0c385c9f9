package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioRecords = []entity.RentalRecord{
	{Year: 0, Month: 1, WorkingDay: true, Holiday: false, Weather: 1, Temp: 0.2, Casual: 10, Registered: 90, Count: 100},
	{Year: 0, Month: 1, WorkingDay: false, Holiday: false, Weather: 2, Temp: 0.3, Casual: 5, Registered: 45, Count: 50},
}

// mixedRecords spans two years, every weather code and a holiday.
var mixedRecords = []entity.RentalRecord{
	{Year: 0, Month: 1, WorkingDay: true, Weather: 1, Temp: 0.20, Casual: 30, Registered: 300, Count: 330},
	{Year: 0, Month: 2, WorkingDay: false, Weather: 2, Temp: 0.25, Casual: 60, Registered: 200, Count: 260},
	{Year: 0, Month: 2, WorkingDay: false, Holiday: true, Weather: 3, Temp: 0.30, Casual: 20, Registered: 100, Count: 120},
	{Year: 0, Month: 12, WorkingDay: true, Weather: 1, Temp: 0.35, Casual: 40, Registered: 500, Count: 540},
	{Year: 1, Month: 3, WorkingDay: true, Weather: 4, Temp: 0.50, Casual: 5, Registered: 25, Count: 30},
	{Year: 1, Month: 1, WorkingDay: false, Weather: 1, Temp: 0.60, Casual: 400, Registered: 900, Count: 1300},
	{Year: 1, Month: 3, WorkingDay: true, Weather: 2, Temp: 0.70, Casual: 100, Registered: 1100, Count: 1200},
}

func TestScenario(t *testing.T) {
	trends := MonthlyTrend(scenarioRecords)
	require.Len(t, trends, 2)
	assert.Equal(t, 2011, trends[0].Year)
	assert.Equal(t, 2012, trends[1].Year)
	assert.Empty(t, trends[1].Months)
	require.Len(t, trends[0].Months, 1)
	assert.Equal(t, entity.MonthlyTotal{
		Year:  2011,
		Month: 1,
		Date:  time.Date(2011, time.January, 1, 0, 0, 0, 0, time.UTC),
		Count: 150,
	}, trends[0].Months[0])

	dayTypes := DayTypeTotals(scenarioRecords)
	assert.Equal(t, 100, dayTypes[0].Total)
	assert.Equal(t, 50, dayTypes[1].Total)

	weather := WeatherTotals(scenarioRecords)
	assert.Equal(t, map[string]int{
		KeyClear:              100,
		KeyMist:               50,
		KeyLightPrecipitation: 0,
		KeyHeavyPrecipitation: 0,
	}, totalsByKey(weather))

	renters := RenterTotals(scenarioRecords)
	assert.Equal(t, map[string]int{KeyCasual: 15, KeyRegistered: 135}, totalsByKey(renters))
}

func TestMonthlyTrendOrderAndYearSums(t *testing.T) {
	trends := MonthlyTrend(mixedRecords)
	require.Len(t, trends, 2)
	assert.Equal(t, 2011, trends[0].Year)
	assert.Equal(t, 2012, trends[1].Year)

	for _, trend := range trends {
		raw := 0
		for _, r := range mixedRecords {
			if r.CalendarYear() == trend.Year {
				raw += r.Count
			}
		}
		assert.Equal(t, raw, trend.Total(), "year %d", trend.Year)

		for i := 1; i < len(trend.Months); i++ {
			assert.True(t, trend.Months[i-1].Date.Before(trend.Months[i].Date))
		}
	}

	months2011 := trends[0].Months
	require.Len(t, months2011, 3)
	assert.Equal(t, []int{1, 2, 12}, []int{months2011[0].Month, months2011[1].Month, months2011[2].Month})
	assert.Equal(t, 380, months2011[1].Count)
}

func TestPartitionsCoverGrandTotal(t *testing.T) {
	grand := GrandTotal(mixedRecords)
	assert.Equal(t, 3780, grand)

	dayTypes := DayTypeTotals(mixedRecords)
	assert.Equal(t, grand, dayTypes[0].Total+dayTypes[1].Total)

	weatherSum := 0
	for _, w := range WeatherTotals(mixedRecords) {
		weatherSum += w.Total
	}
	assert.Equal(t, grand, weatherSum)
}

func TestWeatherTotalsAlwaysFourCategories(t *testing.T) {
	weather := WeatherTotals(nil)
	require.Len(t, weather, 4)
	assert.Equal(t, []string{KeyClear, KeyMist, KeyLightPrecipitation, KeyHeavyPrecipitation},
		[]string{weather[0].Key, weather[1].Key, weather[2].Key, weather[3].Key})

	unknown := []entity.RentalRecord{{Weather: 9, Count: 10, Casual: 4, Registered: 6}}
	for _, w := range WeatherTotals(unknown) {
		assert.Zero(t, w.Total)
	}
}

func TestDayTypeWorkingHolidayCountsInBoth(t *testing.T) {
	records := []entity.RentalRecord{{WorkingDay: true, Holiday: true, Count: 7, Casual: 2, Registered: 5}}
	dayTypes := DayTypeTotals(records)
	assert.Equal(t, 7, dayTypes[0].Total)
	assert.Equal(t, 7, dayTypes[1].Total)
}

func TestVerifyTotals(t *testing.T) {
	report, err := VerifyTotals(mixedRecords)
	require.NoError(t, err)
	assert.Equal(t, len(mixedRecords), report.Checked)
	assert.Empty(t, report.Mismatches)

	bad := append([]entity.RentalRecord{}, scenarioRecords...)
	bad = append(bad,
		entity.RentalRecord{Casual: 1, Registered: 1, Count: 3},
		entity.RentalRecord{Casual: 2, Registered: 2, Count: 1},
	)
	report, err = VerifyTotals(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTotalsMismatch))
	require.Len(t, report.Mismatches, 2)
	assert.Equal(t, 2, report.Mismatches[0].Row)
	assert.Equal(t, 3, report.Mismatches[1].Row)
	assert.Contains(t, err.Error(), "row 3")
}

func TestMonthlyTrendAlwaysBothYears(t *testing.T) {
	trends := MonthlyTrend(nil)
	require.Len(t, trends, 2)
	assert.Equal(t, []int{2011, 2012}, []int{trends[0].Year, trends[1].Year})
	assert.Zero(t, trends[0].Total())
	assert.Zero(t, trends[1].Total())

	only2012 := MonthlyTrend([]entity.RentalRecord{{Year: 1, Month: 5, Count: 40, Casual: 10, Registered: 30}})
	require.Len(t, only2012, 2)
	assert.Empty(t, only2012[0].Months)
	assert.Equal(t, 40, only2012[1].Total())
}

func TestBuildReport(t *testing.T) {
	quality, err := VerifyTotals(scenarioRecords)
	require.NoError(t, err)

	report := BuildReport("all_data.csv", scenarioRecords, quality)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "all_data.csv", report.Source)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, 150, report.GrandTotal)
	assert.Len(t, report.Trends, 2)
	assert.Len(t, report.DayTypes, 2)
	assert.Len(t, report.Weather, 4)
	assert.Len(t, report.RenterTypes, 2)
	assert.Equal(t, 2, report.Quality.Checked)
	assert.NotNil(t, report.Correlation.Coefficient)
}

func TestBuildReportKeepsGivenQuality(t *testing.T) {
	bad := []entity.RentalRecord{{Casual: 1, Registered: 1, Count: 3}}
	quality, err := VerifyTotals(bad)
	require.Error(t, err)

	report := BuildReport("bad.csv", bad, quality)
	assert.Equal(t, quality, report.Quality)
	require.Len(t, report.Quality.Mismatches, 1)
}

func totalsByKey(totals []entity.CategoryTotal) map[string]int {
	m := make(map[string]int, len(totals))
	for _, c := range totals {
		m[c.Key] = c.Total
	}
	return m
}
