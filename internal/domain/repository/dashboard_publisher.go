package repository

import (
	"context"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
)

// DashboardPage is everything the web page needs, already computed and rendered.
type DashboardPage struct {
	Report   entity.Report
	Sections []entity.Section
	Charts   []ChartImage
}

// DashboardPublisher serves a rendered dashboard until the context is cancelled.
type DashboardPublisher interface {
	Publish(ctx context.Context, addr string, page DashboardPage) error
}
