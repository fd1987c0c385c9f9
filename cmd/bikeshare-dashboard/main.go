package main

import (
	"fmt"
	"os"

	"github.com/diillson/bikeshare-dashboard-go/internal/adapter/driven/chart"
	"github.com/diillson/bikeshare-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/bikeshare-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/bikeshare-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/bikeshare-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/bikeshare-dashboard-go/internal/adapter/driving/web"
	"github.com/diillson/bikeshare-dashboard-go/internal/application/usecase"
	"github.com/diillson/bikeshare-dashboard-go/pkg/console"
	"github.com/diillson/bikeshare-dashboard-go/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	// Carrega .env se existir (BIKESHARE_DATA, AWS_PROFILE, ...)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	consoleImpl := console.NewConsole()
	datasetRepo := dataset.NewDatasetRepository()
	chartRepo := chart.NewChartRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	publisher := web.NewPublisher(consoleImpl)

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		chartRepo,
		exportRepo,
		configRepo,
		publisher,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
