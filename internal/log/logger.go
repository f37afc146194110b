package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	config "github.com/thirdweb-dev/receipt-stats/configs"
)

func InitLogger() {
	// overrides zerolog global logger
	log.Logger = NewLogger("receipt-stats", os.Stderr)
}

// NewLogger builds a logger for the diagnostic channel. Output never shares a
// stream with the stats rows.
func NewLogger(name string, out io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := zerolog.WarnLevel
	if lvl, err := zerolog.ParseLevel(config.Cfg.Log.Level); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(out).With().Timestamp().Str("component", name).Logger()
	logger = logger.With().Caller().Logger()
	if config.Cfg.Log.Prettify {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out})
	}
	return logger
}
