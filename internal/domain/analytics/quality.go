package analytics

import (
	"fmt"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/hashicorp/go-multierror"
)

// VerifyTotals checks cnt == casual + registered on every row. The returned error
// aggregates one ErrTotalsMismatch per offending row and is nil when all rows agree.
func VerifyTotals(records []entity.RentalRecord) (entity.QualityReport, error) {
	report := entity.QualityReport{Checked: len(records)}

	var result *multierror.Error
	for i, r := range records {
		if r.Count == r.Casual+r.Registered {
			continue
		}
		report.Mismatches = append(report.Mismatches, entity.TotalsMismatch{
			Row:        i,
			Casual:     r.Casual,
			Registered: r.Registered,
			Count:      r.Count,
		})
		result = multierror.Append(result, fmt.Errorf("row %d: %w (cnt=%d, casual=%d, registered=%d)",
			i, types.ErrTotalsMismatch, r.Count, r.Casual, r.Registered))
	}

	return report, result.ErrorOrNil()
}
