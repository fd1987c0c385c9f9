package analytics

import (
	"testing"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestTemperatureCorrelationBounds(t *testing.T) {
	c := TemperatureCorrelation(mixedRecords)
	require.NotNil(t, c.Coefficient)
	assert.GreaterOrEqual(t, *c.Coefficient, -1.0)
	assert.LessOrEqual(t, *c.Coefficient, 1.0)
	assert.Equal(t, len(mixedRecords), c.N)
	assert.Len(t, c.Points, len(mixedRecords))
}

func TestTemperatureCorrelationScaleInvariant(t *testing.T) {
	c := TemperatureCorrelation(mixedRecords)
	require.NotNil(t, c.Coefficient)

	celsius := make([]float64, len(mixedRecords))
	counts := make([]float64, len(mixedRecords))
	for i, r := range mixedRecords {
		celsius[i] = r.Celsius()
		counts[i] = float64(r.Count)
	}
	assert.InDelta(t, stat.Correlation(celsius, counts, nil), *c.Coefficient, 1e-9)
}

func TestTemperatureCorrelationPerfectLine(t *testing.T) {
	records := []entity.RentalRecord{
		{Temp: 0.1, Count: 100},
		{Temp: 0.2, Count: 200},
		{Temp: 0.3, Count: 300},
	}
	c := TemperatureCorrelation(records)
	require.NotNil(t, c.Coefficient)
	assert.InDelta(t, 1.0, *c.Coefficient, 1e-9)
	// count = (1000/41) * celsius
	assert.InDelta(t, 1000.0/entity.TemperatureScale, c.Slope, 1e-6)
	assert.InDelta(t, 0, c.Intercept, 1e-6)
}

func TestTemperatureCorrelationUndefined(t *testing.T) {
	assert.Nil(t, TemperatureCorrelation(nil).Coefficient)
	assert.Nil(t, TemperatureCorrelation(scenarioRecords[:1]).Coefficient)

	flat := []entity.RentalRecord{{Temp: 0.4, Count: 10}, {Temp: 0.4, Count: 20}}
	c := TemperatureCorrelation(flat)
	assert.Nil(t, c.Coefficient)
	assert.Zero(t, c.Slope)
}
