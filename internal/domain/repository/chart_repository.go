package repository

import (
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
)

// ChartFormat is the encoding produced by a ChartRepository.
type ChartFormat string

const (
	FormatSVG ChartFormat = "svg"
	FormatPNG ChartFormat = "png"
)

// ChartRepository renders chart specs into images.
type ChartRepository interface {
	Render(spec entity.ChartSpec, format ChartFormat) ([]byte, error)
}
