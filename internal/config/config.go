// =============================================================================
// Transaction Merger - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION SOURCES (later sources win):
//   1. Built-in defaults (applyDefaults)
//   2. The YAML configuration file (config.yaml), if it exists
//   3. A .env file in the working directory, if it exists
//   4. Environment variables prefixed with MERGETX_ (e.g. MERGETX_CSV_DELIMITER)
//
// The loaded configuration is validated before it is returned.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MERGETX"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the global application configuration.
type Config struct {
	// InputFiles is the ordered list of transaction files to merge.
	// Files are processed in this order and missing files are skipped.
	// Default: transactions1.csv ... transactions4.csv
	InputFiles []string `yaml:"input_files" envconfig:"INPUT_FILES" validate:"dive,required"`

	// CSV contains settings for splitting and converting input lines.
	CSV CSVSettings `yaml:"csv" envconfig:"CSV"`

	// Logging contains the log sink settings.
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`

	// Report contains the summary and workbook settings.
	Report ReportConfig `yaml:"report" envconfig:"REPORT"`
}

// CSVSettings contains settings for parsing transaction lines.
type CSVSettings struct {
	// Delimiter separates the fields of a line. Quoting is not supported.
	// Default: ","
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required"`

	// DateLayout is the Go time layout of the date field.
	// Default: "02-01-2006" (dd-MM-yyyy)
	DateLayout string `yaml:"date_layout" envconfig:"DATE_LAYOUT" validate:"required"`
}

// LoggingConfig contains settings for the two logging channels.
type LoggingConfig struct {
	// Level is the minimum severity accepted by both channels.
	// Valid values: "trace", "debug", "info", "warn", "error"
	// Default: "trace" (accept everything)
	Level string `yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error"`

	// TextFile is the plain human-readable operational log.
	// Default: "logs.txt"
	TextFile string `yaml:"text_file" envconfig:"TEXT_FILE" validate:"required"`

	// CSVFile is the structured operational log (date,severity,message).
	// Default: "logs.csv"
	CSVFile string `yaml:"csv_file" envconfig:"CSV_FILE" validate:"required"`

	// Quiet disables the console sink of both channels.
	Quiet bool `yaml:"quiet" envconfig:"QUIET"`
}

// ReportConfig contains settings for the run summary.
type ReportConfig struct {
	// Locale is the BCP 47 tag used to format currency values.
	// Default: "en-NZ"
	Locale string `yaml:"locale" envconfig:"LOCALE" validate:"required"`

	// XLSXDir is the directory the merged workbook is written to.
	// Leave empty to skip writing a workbook.
	XLSXDir string `yaml:"xlsx_dir" envconfig:"XLSX_DIR"`

	// FileNameFormat names the workbook.
	// Placeholders: {uuid}, {timestamp}, {date}, {time}
	// Default: "transactions_{timestamp}_{uuid}.xlsx"
	FileNameFormat string `yaml:"file_name_format" envconfig:"FILE_NAME_FORMAT" validate:"required"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultInputFiles is the input set used when nothing else is configured.
var DefaultInputFiles = []string{
	"transactions1.csv",
	"transactions2.csv",
	"transactions3.csv",
	"transactions4.csv",
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFiles == nil {
		cfg.InputFiles = append([]string(nil), DefaultInputFiles...)
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = ","
	}
	if cfg.CSV.DateLayout == "" {
		cfg.CSV.DateLayout = "02-01-2006"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "trace"
	}
	if cfg.Logging.TextFile == "" {
		cfg.Logging.TextFile = "logs.txt"
	}
	if cfg.Logging.CSVFile == "" {
		cfg.Logging.CSVFile = "logs.csv"
	}
	if cfg.Report.Locale == "" {
		cfg.Report.Locale = "en-NZ"
	}
	if cfg.Report.FileNameFormat == "" {
		cfg.Report.FileNameFormat = "transactions_{timestamp}_{uuid}.xlsx"
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file (if present), applies environment
// overrides and defaults, and validates the result.
//
// A missing configuration file is not an error: the defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults only.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// .env is optional; real environment variables always win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the struct tags and the fields that need more than a tag.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if len([]rune(cfg.CSV.Delimiter)) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", cfg.CSV.Delimiter)
	}
	if _, err := language.Parse(cfg.Report.Locale); err != nil {
		return fmt.Errorf("report.locale %q: %w", cfg.Report.Locale, err)
	}
	return nil
}
