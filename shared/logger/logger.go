// Package logger sets up the global zerolog logger used across the portal.
package logger

import (
	"hostel/config"
	"hostel/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger gives the binaries a readable console logger before the
// configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(console())
}

// Configure switches to JSON output in production and tags every entry with
// the application name.
func Configure(cfg *config.Config) {
	var output io.Writer = console()
	if cfg.Server.Env == constant.ServerEnvProduction {
		output = os.Stdout
	}

	logCtx := log.Output(output).With().Timestamp()
	if cfg.App.Name != "" {
		logCtx = logCtx.Str("app", cfg.App.Name)
	}

	log.Logger = logCtx.Logger()

	SetLogLevel(cfg)
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Send()
}

// SetLogLevel applies SERVER_LOG_LEVEL. Empty or unknown values mean info.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)

	switch {
	case err != nil:
		log.Warn().Str("level", cfg.Server.LogLevel).Msg("unknown log level, using info")

		level = defaultLevel
	case level == zerolog.NoLevel:
		level = defaultLevel
	}

	zerolog.SetGlobalLevel(level)
}

func console() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}
