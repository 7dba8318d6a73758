package config

import "os"

// App captures process-level configuration for the terminal application.
type App struct {
	// ColorEnabled toggles ANSI colour codes in rendered output.
	ColorEnabled bool
	// LogLevel is the slog level name for the stderr logger (debug, info,
	// warn, error).
	LogLevel string
	// CatalogPath optionally points at a YAML catalog file that replaces the
	// embedded seed data.
	CatalogPath string
}

// FromEnv builds an App config from environment variables so main stays lean.
func FromEnv() App {
	color := os.Getenv("ATL_COLOR") != "off"
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		color = false
	}

	level := os.Getenv("ATL_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}

	return App{
		ColorEnabled: color,
		LogLevel:     level,
		CatalogPath:  os.Getenv("ATL_CATALOG"),
	}
}
