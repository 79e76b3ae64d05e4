package logger

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// Level is the level at which a logger is configured. All messages sent
// to a level which is below the current level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelStrs = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

// LevelFromString returns a level based on the input string s. If the input
// can't be interpreted as a valid log level, the info level and false is
// returned.
func LevelFromString(s string) (l Level, ok bool) {
	switch strings.ToLower(s) {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "crt":
		return LevelCritical, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

// String returns the tag of the logger used in log messages, or "OFF" if
// the level will not produce any log output.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelStrs[l]
}

type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger for a Backend.
type Logger struct {
	level uint32 // atomic
	tag   string
	b     *Backend
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

// Backend returns the log backend
func (l *Logger) Backend() *Backend {
	return l.b
}

// Tracef formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Writef(LevelTrace, format, args...)
}

// Debugf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Writef(LevelDebug, format, args...)
}

// Infof formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Writef(LevelInfo, format, args...)
}

// Warnf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Writef(LevelWarn, format, args...)
}

// Errorf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Writef(LevelError, format, args...)
}

// Criticalf formats message according to format specifier, prepends the prefix as
// necessary, and writes to log with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Writef(LevelCritical, format, args...)
}

// Writef formats the message and hands it to the backend if logLevel is
// enabled for this logger. Nothing is written while the backend isn't running.
func (l *Logger) Writef(logLevel Level, format string, args ...interface{}) {
	if l.Level() > logLevel || !l.b.IsRunning() {
		return
	}
	l.write(logLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) write(logLevel Level, message string) {
	buf := &bytes.Buffer{}
	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(logLevel.String())
	buf.WriteString("] ")
	buf.WriteString(l.tag)
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		buf.WriteByte(' ')
		buf.WriteString(callsite(l.b.flag))
	}
	buf.WriteString(": ")
	buf.WriteString(message)
	if !strings.HasSuffix(message, "\n") {
		buf.WriteByte('\n')
	}
	l.b.writeChan <- logEntry{log: buf.Bytes(), level: logLevel}
}

// callsite returns the file and line of the code that called one of the
// Logger's exported methods.
func callsite(flag uint32) string {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return "???:0"
	}
	if flag&LogFlagShortFile != 0 {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
	}
	return fmt.Sprintf("%s:%d", file, line)
}
