package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	ReferenceYear int
	DataDir       string // empty means the embedded dataset
	LogLevel      string
	LogFormat     string
	ReportLocale  language.Tag
	MetricsFile   string // empty disables the textfile export
	StrictLevers  bool
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is read first if present;
// variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	year, err := parseReferenceYear()
	if err != nil {
		return nil, err
	}

	locale, err := language.Parse(sharedcfg.EnvOrDefault("REPORT_LOCALE", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_LOCALE: %w", err)
	}

	strict := false
	if v := os.Getenv("STRICT_LEVERS"); v != "" {
		strict, err = strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("invalid STRICT_LEVERS")
		}
	}

	cfg := &Config{
		ReferenceYear: year,
		DataDir:       os.Getenv("DATA_DIR"),
		LogLevel:      sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ReportLocale:  locale,
		MetricsFile:   os.Getenv("METRICS_FILE"),
		StrictLevers:  strict,
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", cfg.LogFormat)
	}

	if cfg.DataDir != "" {
		info, err := os.Stat(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("invalid DATA_DIR: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("invalid DATA_DIR: %s is not a directory", cfg.DataDir)
		}
	}

	return cfg, nil
}

func parseReferenceYear() (int, error) {
	s := sharedcfg.EnvOrDefault("REFERENCE_YEAR", "2023")
	year, err := strconv.Atoi(s)
	if err != nil || year < 1000 || year > 9999 {
		return 0, errors.New("invalid REFERENCE_YEAR")
	}
	return year, nil
}
