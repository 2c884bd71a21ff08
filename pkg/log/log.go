// package log provides a simple logger with leveled log messages.
//
//   - DebugLevel (highest verbosity)
//   - InfoLevel
//   - WarningLevel
//   - ErrorLevel
//   - FatalLevel (lowest verbosity)
//
// Messages are written to standard error by default, optionally with
// a date prefix and ANSI colors.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type level int

const (
	DebugLevel   level = iota // DebugLevel logs all messages
	InfoLevel                 // InfoLevel logs info messages and above
	WarningLevel              // WarningLevel logs warning messages and above
	ErrorLevel                // ErrorLevel logs error messages and above
	FatalLevel                // FatalLevel only logs fatal messages
)

type tag struct {
	plain   string
	colored string
}

var (
	tagDebug   = tag{"[DEBU] ", "\x1b[90m[DEBU]\x1b[0m "}
	tagInfo    = tag{"[INFO] ", "\x1b[94m[INFO]\x1b[0m "}
	tagWarning = tag{"[WARN] ", "\x1b[93m[WARN]\x1b[0m "}
	tagError   = tag{"[ERRO] ", "\x1b[91m[ERRO]\x1b[0m "}
	tagFatal   = tag{"[FATA] ", "\x1b[91m[FATA]\x1b[0m "}
)

var (
	mu           sync.Mutex
	currentLevel = InfoLevel
	color        = false
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the logging level. Available options: DebugLevel,
// InfoLevel, WarningLevel, ErrorLevel, FatalLevel.
func SetLevel(lv level) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = lv
}

// SetLevelFromString sets the logging level from a name, one of
// "debug", "info", "warning", "error".
func SetLevelFromString(levelName string) error {
	switch levelName {
	case "debug":
		SetLevel(DebugLevel)
	case "info":
		SetLevel(InfoLevel)
	case "warning":
		SetLevel(WarningLevel)
	case "error":
		SetLevel(ErrorLevel)
	default:
		return fmt.Errorf("invalid logging level %s", levelName)
	}
	return nil
}

// SetOutput redirects log output, e.g., to a file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// SetDate enables or disables the date prefix.
func SetDate(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	if enable {
		logger.SetFlags(log.LstdFlags)
	} else {
		logger.SetFlags(0)
	}
}

// SetColor enables or disables ANSI-colored level tags.
func SetColor(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	color = enable
}

func output(lv level, t tag, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if currentLevel > lv {
		return
	}
	prefix := t.plain
	if color {
		prefix = t.colored
	}
	logger.Printf(prefix+format, v...)
}

func Debug(format string, v ...interface{}) {
	output(DebugLevel, tagDebug, format, v...)
}

func Info(format string, v ...interface{}) {
	output(InfoLevel, tagInfo, format, v...)
}

func Warning(format string, v ...interface{}) {
	output(WarningLevel, tagWarning, format, v...)
}

func Error(format string, v ...interface{}) {
	output(ErrorLevel, tagError, format, v...)
}

func Fatal(format string, v ...interface{}) {
	output(FatalLevel, tagFatal, format, v...)
	os.Exit(1)
}
