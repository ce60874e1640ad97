package logger

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	substr = "mtwist/"
	strlen = len(substr)
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		idx := strings.LastIndex(file, substr)
		if idx != -1 {
			file = file[idx+strlen:]
		}
		return file + ":" + strconv.Itoa(line)
	}
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

var Logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stdout,
	TimeFormat: time.StampMilli,
}).With().Timestamp().Caller().Logger().Level(zerolog.InfoLevel)

func Trace() *zerolog.Event { return Logger.Trace() }
func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }

// SetLevel adjusts Logger by name. Unknown names leave the level unchanged
// and report false.
func SetLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace":
		Logger = Logger.Level(zerolog.TraceLevel)
	case "debug":
		Logger = Logger.Level(zerolog.DebugLevel)
	case "info", "":
		Logger = Logger.Level(zerolog.InfoLevel)
	case "warn":
		Logger = Logger.Level(zerolog.WarnLevel)
	case "error":
		Logger = Logger.Level(zerolog.ErrorLevel)
	case "silent", "disabled":
		Logger = Logger.Level(zerolog.Disabled)
	default:
		return false
	}
	return true
}
