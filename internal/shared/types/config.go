package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Data       string   `json:"data" yaml:"data" toml:"data"`
	AWSProfile string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	Addr       string   `json:"addr" yaml:"addr" toml:"addr"`
	Serve      bool     `json:"serve" yaml:"serve" toml:"serve"`
	Strict     bool     `json:"strict" yaml:"strict" toml:"strict"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	ChartsDir  string   `json:"charts_dir" yaml:"charts_dir" toml:"charts_dir"`
}
