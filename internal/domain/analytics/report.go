package analytics

import (
	"time"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/google/uuid"
)

// BuildReport derives every dashboard view from the records.
// quality is the result of VerifyTotals on the same records; it is stored as is.
func BuildReport(source string, records []entity.RentalRecord, quality entity.QualityReport) entity.Report {
	return entity.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Rows:        len(records),
		GrandTotal:  GrandTotal(records),
		Trends:      MonthlyTrend(records),
		DayTypes:    DayTypeTotals(records),
		Weather:     WeatherTotals(records),
		Correlation: TemperatureCorrelation(records),
		RenterTypes: RenterTotals(records),
		Quality:     quality,
	}
}
