package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Data       string
	AWSProfile string
	Serve      bool
	Addr       string
	Strict     bool
	ReportName string
	ReportType []string
	Dir        string
	ChartsDir  string
}
