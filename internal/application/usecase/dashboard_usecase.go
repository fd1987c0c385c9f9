package usecase

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/diillson/bikeshare-dashboard-go/internal/domain/analytics"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/entity"
	"github.com/diillson/bikeshare-dashboard-go/internal/domain/repository"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

const (
	// DefaultDataFile é usado quando nenhuma origem é informada.
	DefaultDataFile = "all_data.csv"
	// DataEnvVar pode apontar para o dataset (arquivo local ou s3://).
	DataEnvVar = "BIKESHARE_DATA"
	// DefaultAddr é o endereço padrão da página web.
	DefaultAddr = ":8501"
)

// maxMismatchesShown limita quantas linhas inconsistentes são listadas no terminal.
const maxMismatchesShown = 5

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	chartRepo   repository.ChartRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	publisher   repository.DashboardPublisher
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	chartRepo repository.ChartRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	publisher repository.DashboardPublisher,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		chartRepo:   chartRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		publisher:   publisher,
		console:     console,
	}
}

// LoadConfig carrega o arquivo de configuração informado em --config-file.
func (uc *DashboardUseCase) LoadConfig(path string) (*types.Config, error) {
	return uc.configRepo.LoadConfigFile(path)
}

// ResolveDataLocation escolhe a origem do dataset: flag/config, variável de ambiente ou o padrão.
func ResolveDataLocation(args *types.CLIArgs) string {
	if args.Data != "" {
		return args.Data
	}
	if env := os.Getenv(DataEnvVar); env != "" {
		return env
	}
	return DefaultDataFile
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(
	ctx context.Context,
	args *types.CLIArgs,
) error {
	location := ResolveDataLocation(args)

	status := uc.console.Status(fmt.Sprintf("Loading rental data from %s...", location))
	records, err := uc.datasetRepo.LoadRecords(ctx, location, args.AWSProfile)
	status.Stop()
	if err != nil {
		return fmt.Errorf("failed to load dataset %s: %w", location, err)
	}
	uc.console.LogSuccess("Loaded %d rows from %s", len(records), location)

	// Verifica cnt = casual + registered
	quality, qualityErr := analytics.VerifyTotals(records)
	if qualityErr != nil {
		uc.reportQuality(quality)
		if args.Strict {
			return fmt.Errorf("data quality check failed: %w", qualityErr)
		}
	}

	report := analytics.BuildReport(location, records, quality)
	sections := BuildSections(report)

	uc.displayDashboard(report, sections)

	needsImages := args.ChartsDir != "" || args.Serve || (args.ReportName != "" && containsType(args.ReportType, "pdf"))
	var images []repository.ChartImage
	if needsImages {
		images = uc.renderCharts(Charts(sections))
	}

	if args.ChartsDir != "" {
		paths, err := uc.exportRepo.ExportCharts(images, args.ChartsDir)
		if err != nil {
			uc.console.LogError("Failed to write chart files: %s", err)
		} else {
			uc.console.LogSuccess("Wrote %d chart files to %s", len(paths), args.ChartsDir)
		}
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(report, images, args)
	}

	if args.Serve {
		addr := args.Addr
		if addr == "" {
			addr = DefaultAddr
		}
		page := repository.DashboardPage{Report: report, Sections: sections, Charts: images}
		if err := uc.publisher.Publish(ctx, addr, page); err != nil {
			return fmt.Errorf("failed to serve dashboard: %w", err)
		}
	}

	return nil
}

// reportQuality lista as linhas em que cnt difere de casual + registered.
func (uc *DashboardUseCase) reportQuality(quality entity.QualityReport) {
	uc.console.LogWarning("%d of %d rows have cnt different from casual + registered",
		len(quality.Mismatches), quality.Checked)

	table := uc.console.CreateTable()
	table.AddColumn("Row")
	table.AddColumn("Casual")
	table.AddColumn("Registered")
	table.AddColumn("cnt")
	for i, m := range quality.Mismatches {
		if i == maxMismatchesShown {
			break
		}
		table.AddRow(m.Row, m.Casual, m.Registered, pterm.FgRed.Sprint(m.Count))
	}
	uc.console.Print(table.Render())
	if len(quality.Mismatches) > maxMismatchesShown {
		uc.console.LogInfo("... and %d more", len(quality.Mismatches)-maxMismatchesShown)
	}
}

// displayDashboard imprime as seções no terminal, na mesma ordem da página web.
func (uc *DashboardUseCase) displayDashboard(report entity.Report, sections []entity.Section) {
	summary := uc.console.CreateTable()
	summary.AddColumn("Source")
	summary.AddColumn("Rows")
	summary.AddColumn("Total Rentals")
	summary.AddColumn("Run ID")
	summary.AddRow(report.Source, report.Rows, report.GrandTotal, report.RunID)
	uc.console.Print(summary.Render())

	for _, section := range sections {
		uc.console.DisplaySectionTitle(section.Title)
		for _, spec := range section.Charts {
			switch spec.Kind {
			case entity.ChartLine:
				uc.console.DisplayTrendBars(spec.Title, monthlyCounts(spec))
			case entity.ChartBar:
				uc.console.DisplayBarChart(spec.Title, barValues(spec))
			case entity.ChartScatter:
				uc.displayCorrelation(report.Correlation)
			}
		}
	}
}

func (uc *DashboardUseCase) displayCorrelation(c entity.TemperatureCorrelation) {
	uc.console.Println(pterm.FgLightCyan.Sprint(CorrelationText(c)))

	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Observations", c.N)
	table.AddRow("Correlation", c.Formatted())
	if c.Coefficient != nil {
		table.AddRow("Trend Slope (rentals per °C)", fmt.Sprintf("%.2f", c.Slope))
		table.AddRow("Trend Intercept", fmt.Sprintf("%.2f", c.Intercept))
	}
	uc.console.Print(table.Render())
}

// renderCharts gera SVG e PNG de cada gráfico. Gráficos com erro são registrados e pulados.
func (uc *DashboardUseCase) renderCharts(specs []entity.ChartSpec) []repository.ChartImage {
	images := make([]repository.ChartImage, 0, len(specs))
	for _, spec := range specs {
		svg, err := uc.chartRepo.Render(spec, repository.FormatSVG)
		if err != nil {
			uc.console.LogError("Failed to render chart %s: %s", spec.ID, err)
			continue
		}
		png, err := uc.chartRepo.Render(spec, repository.FormatPNG)
		if err != nil {
			uc.console.LogError("Failed to render chart %s: %s", spec.ID, err)
			continue
		}
		images = append(images, repository.ChartImage{ID: spec.ID, Title: spec.Title, SVG: svg, PNG: png})
	}
	return images
}

// exportReports gera cada tipo de relatório pedido. Falhas não interrompem os demais.
func (uc *DashboardUseCase) exportReports(report entity.Report, images []repository.ChartImage, args *types.CLIArgs) {
	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	type result struct {
		kind string
		path string
		err  error
	}
	results := make([]result, 0, len(args.ReportType))

	for _, reportType := range args.ReportType {
		var path string
		var err error
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, images, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
		default:
			err = fmt.Errorf("unsupported report type %q", reportType)
		}
		results = append(results, result{kind: reportType, path: path, err: err})
		progress.Increment()
	}
	progress.Stop()

	for _, r := range results {
		if r.err != nil {
			uc.console.LogError("Failed to export to %s: %s", r.kind, r.err)
		} else {
			uc.console.LogSuccess("Successfully exported to %s: %s", r.kind, r.path)
		}
	}
}

func monthlyCounts(spec entity.ChartSpec) []types.MonthlyCount {
	counts := make([]types.MonthlyCount, len(spec.Points))
	for i, p := range spec.Points {
		counts[i] = types.MonthlyCount{Month: p.Label, Count: int(math.Round(p.Value))}
	}
	return counts
}

func barValues(spec entity.ChartSpec) []types.BarValue {
	bars := make([]types.BarValue, len(spec.Points))
	for i, p := range spec.Points {
		bars[i] = types.BarValue{Label: p.Label, Value: int(math.Round(p.Value))}
	}
	return bars
}

func containsType(kinds []string, want string) bool {
	for _, t := range kinds {
		if t == want {
			return true
		}
	}
	return false
}
