package entity

import (
	"fmt"
	"time"
)

// MonthlyTotal is the rental count of one calendar month.
type MonthlyTotal struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// YearTrend groups the monthly totals of a calendar year in date order.
type YearTrend struct {
	Year   int            `json:"year"`
	Months []MonthlyTotal `json:"months"`
}

// Total sums the monthly counts of the year.
func (t YearTrend) Total() int {
	total := 0
	for _, m := range t.Months {
		total += m.Count
	}
	return total
}

// CategoryTotal is the summed count of a subset of rows.
type CategoryTotal struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Total int    `json:"total"`
}

// TemperaturePoint is one scatter point of the temperature chart.
type TemperaturePoint struct {
	Celsius float64 `json:"celsius"`
	Count   int     `json:"count"`
}

// TemperatureCorrelation describes how the rental count follows temperature.
// Coefficient is nil when the correlation is undefined.
type TemperatureCorrelation struct {
	Coefficient *float64           `json:"coefficient"`
	Slope       float64            `json:"slope"`
	Intercept   float64            `json:"intercept"`
	N           int                `json:"n"`
	Points      []TemperaturePoint `json:"points,omitempty"`
}

// Formatted imprime o coeficiente com duas casas decimais, ou N/A quando indefinido.
func (c TemperatureCorrelation) Formatted() string {
	if c.Coefficient == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *c.Coefficient)
}

// TotalsMismatch is a row whose count differs from casual + registered.
type TotalsMismatch struct {
	Row        int `json:"row"`
	Casual     int `json:"casual"`
	Registered int `json:"registered"`
	Count      int `json:"cnt"`
}

// QualityReport holds the result of the totals check.
type QualityReport struct {
	Checked    int              `json:"checked"`
	Mismatches []TotalsMismatch `json:"mismatches,omitempty"`
}

// Report contains every view derived from the loaded dataset.
type Report struct {
	RunID       string                 `json:"run_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Source      string                 `json:"source"`
	Rows        int                    `json:"rows"`
	GrandTotal  int                    `json:"grand_total"`
	Trends      []YearTrend            `json:"trends"`
	DayTypes    []CategoryTotal        `json:"day_types"`
	Weather     []CategoryTotal        `json:"weather"`
	Correlation TemperatureCorrelation `json:"correlation"`
	RenterTypes []CategoryTotal        `json:"renter_types"`
	Quality     QualityReport          `json:"quality"`
}
