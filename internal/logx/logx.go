// Package logx configures the process-wide zerolog logger. All packages log
// through the zerolog/log global; this is the operator-facing diagnostic
// channel, never surfaced to shoppers.
package logx

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger. Development gets a console writer at debug
// level; anything else logs JSON to stderr at info level.
func Init(env string) {
	if env == "development" {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
