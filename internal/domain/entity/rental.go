package entity

// BaseYear is the calendar year encoded by a year indicator of 0.
const BaseYear = 2011

// TemperatureScale converts the normalized temperature to degrees Celsius.
const TemperatureScale = 41.0

// Weather situation codes.
const (
	WeatherClear              = 1
	WeatherMist               = 2
	WeatherLightPrecipitation = 3
	WeatherHeavyPrecipitation = 4
)

// RentalRecord is one observation of the bike-rental dataset.
type RentalRecord struct {
	Year       int     `json:"yr"`
	Month      int     `json:"mnth"`
	WorkingDay bool    `json:"workingday"`
	Holiday    bool    `json:"holiday"`
	Weather    int     `json:"weathersit"`
	Temp       float64 `json:"temp"`
	Casual     int     `json:"casual"`
	Registered int     `json:"registered"`
	Count      int     `json:"cnt"`
}

// CalendarYear maps the binary year indicator to a calendar year.
func (r RentalRecord) CalendarYear() int {
	return BaseYear + r.Year
}

// Celsius returns the temperature in degrees Celsius.
func (r RentalRecord) Celsius() float64 {
	return r.Temp * TemperatureScale
}

// WeekendOrHoliday reports whether the day is not a working day or is a holiday.
func (r RentalRecord) WeekendOrHoliday() bool {
	return !r.WorkingDay || r.Holiday
}
