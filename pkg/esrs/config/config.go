// Package config loads the single settings structure shared by every
// pipeline component.
//
// The YAML document is read once, environment variables prefixed with ESRS
// override individual keys, and the result is validated before any stage
// runs. Components receive the resulting *Config in their constructors.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the settings document is looked up when no path is given.
const DefaultPath = "config/config.yaml"

// DateToken is replaced by the run date in Report.OutputFilename.
const DateToken = "{date}"

// Config is the complete run configuration.
type Config struct {
	DataSources DataSourcesConfig `yaml:"data_sources" envconfig:"DATA_SOURCES"`
	Modules     []string          `yaml:"esrs_modules" envconfig:"ESRS_MODULES" validate:"required,min=1,unique,dive,required"`
	Report      ReportConfig      `yaml:"report" envconfig:"REPORT"`
	PDF         PDFConfig         `yaml:"pdf" envconfig:"PDF"`
}

// DataSourcesConfig locates the input workbooks.
type DataSourcesConfig struct {
	ExcelFolder     string `yaml:"excel_folder" envconfig:"EXCEL_FOLDER" validate:"required"`
	FilePattern     string `yaml:"file_pattern" envconfig:"FILE_PATTERN" validate:"required"`
	ProcessedFolder string `yaml:"processed_folder" envconfig:"PROCESSED_FOLDER" validate:"required"`
}

// ReportConfig describes the organization and where the report goes.
type ReportConfig struct {
	CompanyName     string `yaml:"company_name" envconfig:"COMPANY_NAME" validate:"required"`
	ReportingPeriod string `yaml:"reporting_period" envconfig:"REPORTING_PERIOD" validate:"required"`
	OutputFolder    string `yaml:"output_folder" envconfig:"OUTPUT_FOLDER" validate:"required"`
	OutputFilename  string `yaml:"output_filename" envconfig:"OUTPUT_FILENAME" validate:"required"`
}

// PDFConfig holds document style parameters in points.
type PDFConfig struct {
	TitleFontSize   float64 `yaml:"title_font_size" envconfig:"TITLE_FONT_SIZE" validate:"gt=0"`
	HeadingFontSize float64 `yaml:"heading_font_size" envconfig:"HEADING_FONT_SIZE" validate:"gt=0"`
}

// Default returns the values used for keys the document leaves out.
// Keys without a sensible default stay empty and fail validation.
func Default() Config {
	return Config{
		DataSources: DataSourcesConfig{
			FilePattern:     "*.xlsx",
			ProcessedFolder: "data/processed",
		},
		PDF: PDFConfig{
			TitleFontSize:   24,
			HeadingFontSize: 16,
		},
	}
}

// Load reads, overrides and validates the configuration at path.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			ce.Path = path
			return nil, ce
		}
		return nil, err
	}
	return cfg, nil
}

// Parse builds a configuration from a YAML document plus environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Kind: KindInvalid, Err: err}
	}

	// Only variables that are set override the document.
	if err := envconfig.Process("ESRS", &cfg); err != nil {
		return nil, &Error{Kind: KindInvalid, Err: fmt.Errorf("environment: %w", err)}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindInvalid, Err: err}
	}
	return &cfg, nil
}

// Validate checks required keys and value ranges.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag())
		}
		return err
	}
	return nil
}
