package repository

import (
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
)

// ChartImage is a rendered chart ready to be written or embedded.
type ChartImage struct {
	ID    string
	Title string
	SVG   []byte
	PNG   []byte
}

type ExportRepository interface {
	ExportToCSV(report entity.Report, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.Report, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.Report, charts []ChartImage, filename string, outputDir string) (string, error)
	ExportToXLSX(report entity.Report, filename string, outputDir string) (string, error)

	// Chart files
	ExportCharts(charts []ChartImage, outputDir string) ([]string, error)
}
