//
// Logger test
//

package log

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestLogLevels(tst *testing.T) {
	var buf bytes.Buffer

	l := &Logger{level: WARN, flags: WithLevel}
	l.SetOutput(&buf)

	c := l.ChildWithPrefix("child")
	c.Trace("hello %s", "trace")
	c.Debug("hello %s", "debug")
	c.Warn("hello %s", "warn")
	c.Error("hello %s", "error")

	expected := "W: child: hello warn\nE: child: hello error\n"
	if buf.String() != expected {
		tst.Fatalf("output mismatch:\nexpected: %q\npresent:  %q",
			expected, buf.String())
	}
}

func TestLogDump(tst *testing.T) {
	var buf bytes.Buffer

	l := &Logger{level: TRACE}
	l.SetOutput(&buf)

	l.Dump(TRACE, []byte("L\x00\x00\x00\x01\x14\x02\x00\x00\x00\x00\x00\xc0\x00\x00\x00\x00\x00\x00F"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		tst.Fatalf("expected 2 lines, present %d: %q", len(lines), buf.String())
	}

	if !strings.HasPrefix(lines[0], "0000: 4c 00 00 00:01") {
		tst.Fatalf("unexpected first line %q", lines[0])
	}

	if !strings.HasPrefix(lines[1], "0010: 00 00 00 46") {
		tst.Fatalf("unexpected second line %q", lines[1])
	}

	l.SetLevel(INFO)
	buf.Reset()
	l.Dump(TRACE, []byte("hidden"))
	if buf.Len() != 0 {
		tst.Fatalf("dump below log level must be suppressed")
	}
}

func TestParseLevel(tst *testing.T) {
	tests := []struct {
		name  string
		level Level
		ok    bool
	}{
		{"trace", TRACE, true},
		{"DEBUG", DEBUG, true},
		{" warn ", WARN, true},
		{"error", ERROR, true},
		{"loud", DefaultLevel, false},
	}

	for _, test := range tests {
		level, err := ParseLevel(test.name)
		if (err == nil) != test.ok {
			tst.Fatalf("ParseLevel(%q): unexpected error status %v", test.name, err)
		}
		if level != test.level {
			tst.Fatalf("ParseLevel(%q): expected %d, present %d",
				test.name, test.level, level)
		}
	}
}

func TestLogTimeFlags(tst *testing.T) {
	tests := []struct {
		flags Flags
		re    string
	}{
		{WithLevel, `^W: x: msg\n$`},
		{WithLevel | WithTime, `^\d\d:\d\d:\d\d W: x: msg\n$`},
		{WithLevel | WithClock, `^\d\d:\d\d:\d\d\.\d\d\d W: x: msg\n$`},
		{WithTime, `^\d\d:\d\d:\d\d x: msg\n$`},
	}

	for _, test := range tests {
		var buf bytes.Buffer

		l := &Logger{level: TRACE}
		l.SetFlags(test.flags)
		l.SetOutput(&buf)
		l.ChildWithPrefix("x").Warn("msg")

		if !regexp.MustCompile(test.re).MatchString(buf.String()) {
			tst.Fatalf("flags 0x%x: %q doesn't match %s", test.flags, buf.String(), test.re)
		}
	}
}

func TestLevelFromEnv(tst *testing.T) {
	const env = "LNKTOOLS_TEST_LOG"

	saved := DefaultLogger.root()
	level, flags := saved.level, saved.flags
	defer func() {
		DefaultLogger.SetLevel(level)
		DefaultLogger.SetFlags(flags)
	}()

	tests := []struct {
		value string
		level Level
		flags Flags
		ok    bool
	}{
		{"debug", DEBUG, WithLevel, true},
		{"trace+time", TRACE, WithLevel | WithTime, true},
		{"warn+Clock", WARN, WithLevel | WithClock, true},
		{"+time", WARN, WithLevel | WithTime, true},
		{"loud", WARN, WithLevel | WithTime, false},
		{"info+date", WARN, WithLevel | WithTime, false},
	}

	for _, test := range tests {
		tst.Setenv(env, test.value)

		err := LevelFromEnv(env)
		if (err == nil) != test.ok {
			tst.Fatalf("%q: unexpected error status %v", test.value, err)
		}

		if DefaultLogger.level != test.level || DefaultLogger.flags != test.flags {
			tst.Fatalf("%q: level %d flags 0x%x, expected %d 0x%x", test.value,
				DefaultLogger.level, DefaultLogger.flags, test.level, test.flags)
		}
	}
}
