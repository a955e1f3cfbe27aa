package logger

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	AppLogger  zerolog.Logger
	HttpLogger zerolog.Logger
)

// Init configures the process loggers. AppLogger writes human-readable
// output to stderr and mirrors its JSON stream into the current day's
// partition file, so the service's own logs are queryable like any other
// producer's; zerolog's field names are aligned with the LogEntry schema
// for that reason. HttpLogger keeps request traces in a separate plain
// file outside the partition directory.
func Init(serviceName, logDir string, loc *time.Location) {
	level := parseLogLevel(os.Getenv("LOG_LEVEL"), zerolog.InfoLevel)

	zerolog.TimestampFieldName = "timestamp"
	zerolog.MessageFieldName = "message"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		return short + ":" + strconv.Itoa(line)
	}

	partitionWriter := newDailyWriter(logDir, loc)
	multi := zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
		partitionWriter,
	)
	AppLogger = zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Caller().
		Logger()

	httpFile, err := os.OpenFile("http.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open http log file")
	}
	HttpLogger = zerolog.New(httpFile).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func parseLogLevel(levelStr string, defaultLevel zerolog.Level) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return defaultLevel
	}
}
