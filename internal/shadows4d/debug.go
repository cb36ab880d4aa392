package shadows4d

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// SetupLogging installs the default slog logger: text to w, at debug level
// when debug is set and info level otherwise.
func SetupLogging(w io.Writer, debug bool) {
	Debug = debug
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...))
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		slog.Debug(fmt.Sprintf(format, args...))
	})
}
