package ui

import (
	"io"
	"strings"

	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/validation"
	"github.com/pterm/pterm"
)

// NewLogger builds the diagnostics logger. It writes to w, which is stderr in
// the CLI so that stdout only carries the snapshot.
func NewLogger(cfg config.LogConfig, w io.Writer) (*pterm.Logger, error) {
	level, err := validation.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(level)

	if strings.EqualFold(cfg.Format, constants.LogFormatJSON) {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}

	return logger, nil
}
