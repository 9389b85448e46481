package app

import (
	"flag"
	"fmt"
	"os"

	"github.com/titanous/json5"
)

// CLIArgs holds all command-line arguments passed to the viewer.
type CLIArgs struct {
	ConfigPath string
	ReportPath string
	Demo       bool
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to a JSON5 viewer configuration file.")
	flag.StringVar(&args.ReportPath, "report", "", "Path the HTML report is written to on export.")
	flag.BoolVar(&args.Demo, "demo", false, "Fill the trace with a scripted demo session.")
	flag.Parse()

	return args
}

// Config controls the viewer and the report output.
type Config struct {
	ReportPath string `json:"report_path"`
	Title      string `json:"title"`
	Demo       bool   `json:"demo"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		ReportPath: "trace-report.html",
		Title:      "Quice Trace Viewer",
	}
}

// LoadConfig merges an optional JSON5 config file over the defaults and then
// applies command-line overrides on top.
func LoadConfig(args *CLIArgs) (Config, error) {
	cfg := DefaultConfig()

	if args.ConfigPath != "" {
		data, err := os.ReadFile(args.ConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", args.ConfigPath, err)
		}
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", args.ConfigPath, err)
		}
	}

	if args.ReportPath != "" {
		cfg.ReportPath = args.ReportPath
	}
	if args.Demo {
		cfg.Demo = true
	}
	return cfg, nil
}
