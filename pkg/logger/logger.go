// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by key/value pairs:
//
//	logger.Info("catalog loaded", "movies", n, "version", v)
//	logger.Error("failed to reload catalog", err)
//
// A trailing value without a key is logged under "error" when it is an error
// and under "detail" otherwise.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init configures the global logger for the given environment.
// "production" logs JSON at info level, anything else logs to a console writer at debug level.
func Init(env string) {
	InitWithWriter(env, os.Stderr)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(env string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	level := zerolog.DebugLevel
	var w io.Writer = out
	if strings.EqualFold(env, "production") {
		level = zerolog.InfoLevel
	} else {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, kv ...any) {
	emit(current().Debug(), msg, kv)
}

func Info(msg string, kv ...any) {
	emit(current().Info(), msg, kv)
}

func Warn(msg string, kv ...any) {
	emit(current().Warn(), msg, kv)
}

func Error(msg string, kv ...any) {
	emit(current().Error(), msg, kv)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, kv ...any) {
	emit(current().Fatal(), msg, kv)
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func emit(ev *zerolog.Event, msg string, kv []any) {
	if ev == nil {
		return
	}

	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			if err, ok := kv[i].(error); ok {
				ev = ev.Err(err)
			} else {
				ev = ev.Interface("detail", kv[i])
			}
			break
		}

		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if err, ok := kv[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}

	ev.Msg(msg)
}
