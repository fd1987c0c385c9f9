package analytics

import (
	"math"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"gonum.org/v1/gonum/stat"
)

// TemperatureCorrelation computes the Pearson correlation between the normalized
// temperature and the rental count, plus the least-squares trend line of count
// on temperature in degrees Celsius.
func TemperatureCorrelation(records []entity.RentalRecord) entity.TemperatureCorrelation {
	result := entity.TemperatureCorrelation{N: len(records)}

	temps := make([]float64, len(records))
	celsius := make([]float64, len(records))
	counts := make([]float64, len(records))
	result.Points = make([]entity.TemperaturePoint, len(records))
	for i, r := range records {
		temps[i] = r.Temp
		celsius[i] = r.Celsius()
		counts[i] = float64(r.Count)
		result.Points[i] = entity.TemperaturePoint{Celsius: celsius[i], Count: r.Count}
	}

	if len(records) < 2 {
		return result
	}

	r := stat.Correlation(temps, counts, nil)
	if !math.IsNaN(r) && !math.IsInf(r, 0) {
		// Rounding noise can push |r| just past 1.
		r = math.Max(-1, math.Min(1, r))
		result.Coefficient = &r
	}

	if stat.Variance(celsius, nil) > 0 {
		result.Intercept, result.Slope = stat.LinearRegression(celsius, counts, nil, false)
	}

	return result
}
