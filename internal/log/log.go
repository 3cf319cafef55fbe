// Lnktools - Shell Link utilities
//
// Copyright (C) 2019 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// The logger

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

//----- Log levels -----
//
// Type Level represents a log level enumeration
//
type Level int32

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	DefaultLevel = INFO
)

//
// Log level prefixes and names
//
var levelPrefixes = map[Level]string{
	TRACE: "T",
	DEBUG: "D",
	INFO:  "I",
	WARN:  "W",
	ERROR: "E",
	FATAL: "F",
}

var levelNames = map[string]Level{
	"trace": TRACE,
	"debug": DEBUG,
	"info":  INFO,
	"warn":  WARN,
	"error": ERROR,
	"fatal": FATAL,
}

//
// Get level prefix
//
func (l Level) Prefix() string {
	return levelPrefixes[l]
}

//
// Parse level name, as used in the environment
//
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return DefaultLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

//
// Logger flags
//
type Flags uint32

const (
	WithLevel Flags = 1 << iota // Include log level prefix
	WithClock                   // With monotonic clock since program start
	WithTime                    // With wall-time

	DefaultFlags = WithLevel
)

//----- Logger -----
//
// Type Logger represents logging endpoint
//
type Logger struct {
	prefix string  // Each-line prefix
	parent *Logger // Parent logger
	level  Level   // Verbosity level, root only
	flags  Flags   // Logger flags, root only
	out    io.Writer
	lock   sync.Mutex
}

var start = time.Now()

//
// Format Clock prefix
//
func fmtClock(buf *bytes.Buffer) {
	now := time.Since(start)
	sec := now / time.Second

	fmt.Fprintf(buf, "%2.2d:%2.2d:%2.2d.%3.3d",
		(sec/3600)%24,
		(sec/60)%60,
		sec%60,
		(now-sec*time.Second)/time.Millisecond)
}

//
// Format Time prefix
//
func fmtTime(buf *bytes.Buffer) {
	hour, min, sec := time.Now().Clock()
	fmt.Fprintf(buf, "%2.2d:%2.2d:%2.2d", hour, min, sec)
}

//
// Insert delimiting space between prefix parts
//
func fmtSpace(buf *bytes.Buffer) {
	if buf.Len() != 0 {
		buf.WriteString(" ")
	}
}

//
// Get root of the logger chain
//
func (l *Logger) root() *Logger {
	for l.parent != nil {
		l = l.parent
	}
	return l
}

//
// Write message to logger
//
func (l *Logger) write(level Level, m string) {
	root := l.root()
	if level < root.level {
		return
	}

	// Build prefix
	buf := new(bytes.Buffer)
	flags := root.flags

	switch {
	case flags&WithClock != 0:
		fmtClock(buf)
	case flags&WithTime != 0:
		fmtTime(buf)
	}

	if flags&WithLevel != 0 {
		fmtSpace(buf)
		buf.WriteString(level.Prefix())
		buf.WriteString(":")
	}

	var prefixes []string
	for p := l; p != nil; p = p.parent {
		if p.prefix != "" {
			prefixes = append(prefixes, p.prefix)
		}
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		fmtSpace(buf)
		buf.WriteString(prefixes[i])
		buf.WriteString(":")
	}

	// Append message and output
	if m != "" {
		fmtSpace(buf)
		buf.WriteString(m)
	}

	buf.WriteString("\n")

	root.lock.Lock()
	out := root.out
	if out == nil {
		out = os.Stderr
	}
	out.Write(buf.Bytes())
	root.lock.Unlock()
}

//
// Generic log-output function with formatting
//
func (l *Logger) logf(level Level, s string, v ...interface{}) {
	l.write(level, fmt.Sprintf(s, v...))
}

//
// Output a TRACE-level log message
//
func (l *Logger) Trace(s string, v ...interface{}) {
	l.logf(TRACE, s, v...)
}

//
// Output a DEBUG-level log message
//
func (l *Logger) Debug(s string, v ...interface{}) {
	l.logf(DEBUG, s, v...)
}

//
// Output a WARN-level log message
//
func (l *Logger) Warn(s string, v ...interface{}) {
	l.logf(WARN, s, v...)
}

//
// Output an ERROR-level log message
//
func (l *Logger) Error(s string, v ...interface{}) {
	l.logf(ERROR, s, v...)
}

//
// Output hex dump of binary data
//
func (l *Logger) Dump(level Level, data []byte) {
	if level < l.root().level {
		return
	}

	buf := new(bytes.Buffer)

	off := 0
	for len(data) > 0 {
		sz := len(data)
		if sz > 16 {
			sz = 16
		}

		fmt.Fprintf(buf, "%4.4x: ", off)

		for i := 0; i < sz; i++ {
			c := ' '
			switch i {
			case sz - 1:
			case 3, 11:
				c = ':'
			case 7:
				c = '-'
			}
			fmt.Fprintf(buf, "%2.2x%c", data[i], c)
		}

		for i := sz; i < 16; i++ {
			buf.WriteString("   ")
		}

		for i := 0; i < sz; i++ {
			c := data[i]
			if ' ' <= c && c < 0x7f {
				buf.WriteByte(c)
			} else {
				buf.WriteByte('.')
			}
		}

		l.write(level, buf.String())
		buf.Reset()

		data = data[sz:]
		off += sz
	}
}

//
// Set log level. Affects the whole logger chain
//
func (l *Logger) SetLevel(level Level) {
	l.root().level = level
}

//
// Set log flags. Affects the whole logger chain
//
func (l *Logger) SetFlags(flags Flags) {
	l.root().flags = flags
}

//
// Set output. Affects the whole logger chain
//
func (l *Logger) SetOutput(out io.Writer) {
	root := l.root()
	root.lock.Lock()
	root.out = out
	root.lock.Unlock()
}

//
// Create child logger with prefix
//
func (l *Logger) ChildWithPrefix(prefix string) *Logger {
	return &Logger{prefix: prefix, parent: l}
}

//----- Default logger -----
var DefaultLogger = Logger{level: DefaultLevel, flags: DefaultFlags}

//
// Create new logger, chained to the DefaultLogger
//
func NewLogger(prefix string) *Logger {
	return DefaultLogger.ChildWithPrefix(prefix)
}

//
// Set DefaultLogger level and flags from the environment variable.
//
// The value is level[+time|+clock]: the optional suffix adds wall
// time or time since program start to each line. Empty level leaves
// the level untouched, empty variable leaves everything untouched
//
func LevelFromEnv(name string) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}

	value, suffix, _ := strings.Cut(value, "+")

	flags := WithLevel
	switch strings.ToLower(strings.TrimSpace(suffix)) {
	case "":
	case "time":
		flags |= WithTime
	case "clock":
		flags |= WithClock
	default:
		return fmt.Errorf("%s: unknown log flag %q", name, suffix)
	}

	if strings.TrimSpace(value) != "" {
		level, err := ParseLevel(value)
		if err != nil {
			return fmt.Errorf("%s: %s", name, err)
		}
		DefaultLogger.SetLevel(level)
	}

	DefaultLogger.SetFlags(flags)
	return nil
}

//
// Output a TRACE-level log message
//
func Trace(s string, v ...interface{}) {
	DefaultLogger.Trace(s, v...)
}

//
// Output a DEBUG-level log message
//
func Debug(s string, v ...interface{}) {
	DefaultLogger.Debug(s, v...)
}

//
// Output a WARN-level log message
//
func Warn(s string, v ...interface{}) {
	DefaultLogger.Warn(s, v...)
}

//
// Output an ERROR-level log message
//
func Error(s string, v ...interface{}) {
	DefaultLogger.Error(s, v...)
}
