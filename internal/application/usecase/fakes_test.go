package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
)

type fakeDataset struct {
	records  []entity.RentalRecord
	err      error
	location string
	profile  string
}

func (f *fakeDataset) LoadRecords(_ context.Context, location, awsProfile string) ([]entity.RentalRecord, error) {
	f.location = location
	f.profile = awsProfile
	return f.records, f.err
}

type fakeCharts struct {
	failID string
	calls  int
}

func (f *fakeCharts) Render(spec entity.ChartSpec, format repository.ChartFormat) ([]byte, error) {
	f.calls++
	if spec.ID == f.failID {
		return nil, errors.New("boom")
	}
	return []byte(fmt.Sprintf("<%s id=%q/>", format, spec.ID)), nil
}

type fakeExport struct {
	calls     []string
	charts    []repository.ChartImage
	pdfCharts int
	failType  string
}

func (f *fakeExport) result(kind, name string) (string, error) {
	f.calls = append(f.calls, kind)
	if kind == f.failType {
		return "", errors.New("disk full")
	}
	return name + "." + kind, nil
}

func (f *fakeExport) ExportToCSV(_ entity.Report, name, _ string) (string, error) {
	return f.result("csv", name)
}

func (f *fakeExport) ExportToJSON(_ entity.Report, name, _ string) (string, error) {
	return f.result("json", name)
}

func (f *fakeExport) ExportToPDF(_ entity.Report, charts []repository.ChartImage, name, _ string) (string, error) {
	f.pdfCharts = len(charts)
	return f.result("pdf", name)
}

func (f *fakeExport) ExportToXLSX(_ entity.Report, name, _ string) (string, error) {
	return f.result("xlsx", name)
}

func (f *fakeExport) ExportCharts(charts []repository.ChartImage, _ string) ([]string, error) {
	f.charts = charts
	paths := make([]string, 0, 2*len(charts))
	for _, c := range charts {
		paths = append(paths, c.ID+".svg", c.ID+".png")
	}
	return paths, nil
}

type fakeConfig struct {
	cfg *types.Config
}

func (f *fakeConfig) LoadConfigFile(string) (*types.Config, error) {
	if f.cfg == nil {
		return nil, errors.New("not found")
	}
	return f.cfg, nil
}

type fakePublisher struct {
	addr string
	page *repository.DashboardPage
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, addr string, page repository.DashboardPage) error {
	f.addr = addr
	f.page = &page
	return f.err
}

// fakeConsole grava as chamadas em ordem para os testes conferirem o layout do dashboard.
type fakeConsole struct {
	events   []string
	warnings []string
	errors   []string
	printed  []string
}

func (c *fakeConsole) Print(a ...interface{})            { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Println(a ...interface{})          { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(string, ...interface{})    {}
func (c *fakeConsole) LogSuccess(string, ...interface{}) {}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle                 { return nopHandle{} }
func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle       { return nopHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface                { return &fakeTable{} }
func (c *fakeConsole) DisplaySectionTitle(title string)                 { c.events = append(c.events, "section:"+title) }
func (c *fakeConsole) DisplayBarChart(title string, _ []types.BarValue) { c.events = append(c.events, "bar:"+title) }

func (c *fakeConsole) DisplayTrendBars(title string, _ []types.MonthlyCount) {
	c.events = append(c.events, "trend:"+title)
}

type nopHandle struct{}

func (nopHandle) Increment() {}
func (nopHandle) Stop()      {}

type fakeTable struct {
	rows [][]interface{}
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})      { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                   { return fmt.Sprint(t.rows) }
