// Package dataset carrega o dataset de aluguel de bicicletas a partir de um CSV.
package dataset

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the rental dataset.
const (
	ColYear       = "yr"
	ColMonth      = "mnth"
	ColCount      = "cnt"
	ColWorkingDay = "workingday"
	ColHoliday    = "holiday"
	ColWeather    = "weathersit"
	ColTemp       = "temp"
	ColCasual     = "casual"
	ColRegistered = "registered"
)

// RequiredColumns lists the columns the dashboard reads, in a stable order.
var RequiredColumns = []string{
	ColYear, ColMonth, ColCount, ColWorkingDay, ColHoliday,
	ColWeather, ColTemp, ColCasual, ColRegistered,
}

var columnTypes = map[string]series.Type{
	ColYear:       series.Int,
	ColMonth:      series.Int,
	ColCount:      series.Int,
	ColWorkingDay: series.Int,
	ColHoliday:    series.Int,
	ColWeather:    series.Int,
	ColTemp:       series.Float,
	ColCasual:     series.Int,
	ColRegistered: series.Int,
}

// CSVDatasetRepository implementa o DatasetRepository sobre um dataframe gota.
type CSVDatasetRepository struct {
	s3Client func(ctx context.Context, profile string) (s3API, error)
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository() repository.DatasetRepository {
	return &CSVDatasetRepository{s3Client: newS3Client}
}

// LoadRecords lê o CSV em location e converte cada linha em um RentalRecord.
func (r *CSVDatasetRepository) LoadRecords(ctx context.Context, location, awsProfile string) ([]entity.RentalRecord, error) {
	rc, err := r.open(ctx, location, awsProfile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ParseRecords(rc)
}

// ParseRecords converte um CSV com cabeçalho em RentalRecords.
// Colunas extras são ignoradas; a ausência de uma coluna obrigatória é fatal.
func ParseRecords(rd io.Reader) ([]entity.RentalRecord, error) {
	df := dataframe.ReadCSV(rd,
		dataframe.HasHeader(true),
		dataframe.WithDelimiter(','),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", df.Err)
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, col := range RequiredColumns {
		if !present[col] {
			return nil, fmt.Errorf("%w: %s", types.ErrMissingColumn, col)
		}
	}

	if df.Nrow() == 0 {
		return nil, types.ErrEmptyDataset
	}

	ints := make(map[string][]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		if col == ColTemp {
			continue
		}
		values, err := df.Col(col).Int()
		if err != nil {
			return nil, fmt.Errorf("%w: column %s: %v", types.ErrInvalidValue, col, err)
		}
		ints[col] = values
	}

	temps := df.Col(ColTemp).Float()
	for i, t := range temps {
		if math.IsNaN(t) {
			return nil, fmt.Errorf("%w: column %s, row %d", types.ErrInvalidValue, ColTemp, i)
		}
	}

	records := make([]entity.RentalRecord, df.Nrow())
	for i := range records {
		records[i] = entity.RentalRecord{
			Year:       ints[ColYear][i],
			Month:      ints[ColMonth][i],
			WorkingDay: ints[ColWorkingDay][i] == 1,
			Holiday:    ints[ColHoliday][i] == 1,
			Weather:    ints[ColWeather][i],
			Temp:       temps[i],
			Casual:     ints[ColCasual][i],
			Registered: ints[ColRegistered][i],
			Count:      ints[ColCount][i],
		}
	}

	return records, nil
}
