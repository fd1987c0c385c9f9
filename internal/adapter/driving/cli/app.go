package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/diillson/bikeshare-dashboard-go/internal/application/usecase"
	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/diillson/bikeshare-dashboard-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "bikeshare-dashboard",
		Short:         "Bike rental analytics dashboard",
		Long:          "Loads the daily bike rental dataset and shows monthly trends, day type, weather, temperature and renter type views in the terminal and on a web page.",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Bike Rental Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("data", "f", "", "Dataset location: local CSV path or s3://bucket/key (default: $"+usecase.DataEnvVar+" or "+usecase.DefaultDataFile+")")
	flags.String("aws-profile", "", "AWS shared config profile used for s3:// datasets")
	flags.BoolP("serve", "s", false, "Serve the dashboard web page after printing it")
	flags.String("addr", usecase.DefaultAddr, "Listen address for the web page")
	flags.Bool("strict", false, "Fail when cnt differs from casual + registered on any row")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf, xlsx")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("charts-dir", "", "Directory to write every chart as SVG and PNG")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs substitui os argumentos da linha de comando.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	data, _ := flags.GetString("data")
	awsProfile, _ := flags.GetString("aws-profile")
	serve, _ := flags.GetBool("serve")
	addr, _ := flags.GetString("addr")
	strict, _ := flags.GetBool("strict")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	chartsDir, _ := flags.GetString("charts-dir")

	return &types.CLIArgs{
		ConfigFile: configFile,
		Data:       data,
		AWSProfile: awsProfile,
		Serve:      serve,
		Addr:       addr,
		Strict:     strict,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		ChartsDir:  chartsDir,
	}, nil
}

// mergeConfig aplica os valores do arquivo de configuração. Flags passadas na linha de comando prevalecem.
func (app *CLIApp) mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	changed := app.rootCmd.Flags().Changed

	if cfg.Data != "" && !changed("data") {
		args.Data = cfg.Data
	}
	if cfg.AWSProfile != "" && !changed("aws-profile") {
		args.AWSProfile = cfg.AWSProfile
	}
	if cfg.Addr != "" && !changed("addr") {
		args.Addr = cfg.Addr
	}
	if cfg.Serve && !changed("serve") {
		args.Serve = true
	}
	if cfg.Strict && !changed("strict") {
		args.Strict = true
	}
	if cfg.ReportName != "" && !changed("report-name") {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 && !changed("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && !changed("dir") {
		args.Dir = cfg.Dir
	}
	if cfg.ChartsDir != "" && !changed("charts-dir") {
		args.ChartsDir = cfg.ChartsDir
	}
}

// resolveDirs converte os diretórios de saída em caminhos absolutos.
func resolveDirs(args *types.CLIArgs) error {
	// Set default directory to current working directory if not specified
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return err
		}
		args.Dir = absDir
	}

	if args.ChartsDir != "" {
		absDir, err := filepath.Abs(args.ChartsDir)
		if err != nil {
			return err
		}
		args.ChartsDir = absDir
	}
	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner()

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.ConfigFile != "" {
		cfg, err := app.dashboardUseCase.LoadConfig(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		app.mergeConfig(cliArgs, cfg)
	}

	if err := resolveDirs(cliArgs); err != nil {
		return err
	}

	// Cancela o contexto em Ctrl+C para encerrar downloads e o servidor web
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
