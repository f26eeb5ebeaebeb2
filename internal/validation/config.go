package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/constants"
	"github.com/pterm/pterm"
)

// ValidateConfig checks the values a config file may override
func ValidateConfig(cfg *config.Config) error {
	if cfg.Feed.Capacity < 1 {
		return fmt.Errorf("feed.capacity must be at least 1 (got %d)", cfg.Feed.Capacity)
	}

	if _, err := ParseLogLevel(cfg.Log.Level); err != nil {
		return err
	}

	switch strings.ToLower(cfg.Log.Format) {
	case constants.LogFormatColorful, constants.LogFormatJSON:
	default:
		return fmt.Errorf("invalid log.format '%s' (must be %s or %s)",
			cfg.Log.Format, constants.LogFormatColorful, constants.LogFormatJSON)
	}

	switch strings.ToLower(cfg.Output.Format) {
	case constants.OutputFormatCSV, constants.OutputFormatTable:
	default:
		return fmt.Errorf("invalid output.format '%s' (must be %s or %s)",
			cfg.Output.Format, constants.OutputFormatCSV, constants.OutputFormatTable)
	}

	return nil
}

func ParseLogLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return 0, fmt.Errorf("invalid log.level '%s' (must be trace, debug, info, warn or error)", level)
	}
}
