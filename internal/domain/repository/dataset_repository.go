package repository

import (
	"context"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
)

// DatasetRepository loads the rental records from a local path or an s3:// location.
type DatasetRepository interface {
	LoadRecords(ctx context.Context, location string, awsProfile string) ([]entity.RentalRecord, error)
}
