package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbakker/roofscope/internal/config"
	"github.com/tbakker/roofscope/internal/logging"
)

// setupLogging configures logging from config file, environment, and CLI
// flags, attaches the logger to the command context, and returns a cleanup
// function that closes any log file handle.
func setupLogging(cmd *cobra.Command) (func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	base, closer := logging.New(logCfg)
	logger = logging.ComponentLogger(base, "cli")

	ctx := logging.WithContext(cmd.Context(), logger)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")

	cleanup := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
	return cleanup, nil
}
