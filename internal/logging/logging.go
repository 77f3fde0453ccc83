// A simple logging module with multi-level printf style logging calls and a
// runtime-adjustable logging level.
//
// Logging is done just like calling fmt.Sprintf:
//
//	logging.Info("This toolchain is %s at version %s", kind, version)
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"strings"
)

const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	WARN     = 4
	ERROR    = 8
	CRITICAL = 16
	QUIET    = ERROR | CRITICAL               // setting for errors only
	NORMAL   = INFO | WARN | ERROR | CRITICAL // default setting - all besides debug
	ALL      = 255
	NOTHING  = 0
)

var levelsAscending = []int{DEBUG, INFO, WARNING, ERROR, CRITICAL}

var levelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARN,
	"WARN":     WARN,
	"ERROR":    ERROR,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

var level = NORMAL

// SetLevel sets the logging level as a bit mask of active levels
func SetLevel(l int) {
	level = l
}

// SetMinimalLevel activates the given level and all levels above it
func SetMinimalLevel(l int) {
	newLevel := 0
	for _, lvl := range levelsAscending {
		if lvl >= l {
			newLevel |= lvl
		}
	}
	SetLevel(newLevel)
}

// SetMinimalLevelByName sets the minimal level by its name, useful for config
// files and command line arguments. Case insensitive.
func SetMinimalLevelByName(l string) error {
	l = strings.ToUpper(strings.TrimSpace(l))
	lvl, found := levelsByName[l]
	if !found {
		return fmt.Errorf("invalid level %s", l)
	}

	SetMinimalLevel(lvl)
	return nil
}

// SetOutput sets the output writer, it just wraps log.SetOutput()
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func writeMessage(levelName string, msg string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(2)
	log.Printf("%s @ %s:%d: %s", levelName, path.Base(file), line, fmt.Sprintf(msg, args...))
}

// Debug logs a message at DEBUG level
func Debug(msg string, args ...interface{}) {
	if level&DEBUG != 0 {
		writeMessage("DEBUG", msg, args...)
	}
}

// Info logs a message at INFO level
func Info(msg string, args ...interface{}) {
	if level&INFO != 0 {
		writeMessage("INFO", msg, args...)
	}
}

// Warning logs a message at WARNING level
func Warning(msg string, args ...interface{}) {
	if level&WARN != 0 {
		writeMessage("WARNING", msg, args...)
	}
}

// Error logs a message at ERROR level
func Error(msg string, args ...interface{}) {
	if level&ERROR != 0 {
		writeMessage("ERROR", msg, args...)
	}
}

// Errorf is an alias of Error, for drop-in compatibility with loggers that
// distinguish the two.
func Errorf(msg string, args ...interface{}) {
	if level&ERROR != 0 {
		writeMessage("ERROR", msg, args...)
	}
}

// Critical logs a message at CRITICAL level
func Critical(msg string, args ...interface{}) {
	if level&CRITICAL != 0 {
		writeMessage("CRITICAL", msg, args...)
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
}
