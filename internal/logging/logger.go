// Package logging provides structured, level-gated logging for pfcpctl and
// pfcpcap: a Silent/Error/Info/Verbose/Debug ladder, mutex-guarded
// stdout/stderr plus an optional file sink, JSON or text line format, and a
// sampling counter for high-rate callers. The codec packages
// (wire/ie/message/compare) stay side-effect-free and never import this
// package — logging is a CLI-facing concern, kept out of the codec.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging verbosity.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelInfo
	LevelVerbose
	LevelDebug
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	level    Level
	file     *os.File
	fileLog  *log.Logger
	stdout   *log.Logger
	stderr   *log.Logger
	format   string // "text" or "json"
	logEvery int    // console-output sampling rate; 1 = every message
	counter  int
}

// New creates a Logger at level, optionally tee-ing all output to logFile.
func New(level Level, logFile string) (*Logger, error) {
	return NewWithOptions(level, logFile, "text", 1)
}

// NewWithOptions is New plus an output format ("text"/"json", default
// "text") and a console-sampling rate (every logEvery-th message reaches
// stdout/stderr when no file sink is attached; default 1). The file sink,
// when present, always receives every message regardless of sampling.
func NewWithOptions(level Level, logFile, format string, logEvery int) (*Logger, error) {
	if format == "" {
		format = "text"
	}
	if logEvery <= 0 {
		logEvery = 1
	}
	l := &Logger{
		level:    level,
		stdout:   log.New(os.Stdout, "", 0),
		stderr:   log.New(os.Stderr, "", 0),
		format:   format,
		logEvery: logEvery,
	}
	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}
	return l, nil
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error-level message; always written when level >= LevelError.
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LevelError {
		l.emit(true, format, v...)
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LevelInfo {
		l.emit(false, format, v...)
	}
}

// Verbose logs a message only shown at LevelVerbose and above.
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LevelVerbose {
		l.emit(false, format, v...)
	}
}

// Debug logs a message only shown at LevelDebug.
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LevelDebug {
		l.emit(false, format, v...)
	}
}

func levelLabel(isError bool) string {
	if isError {
		return "error"
	}
	return "info"
}

func (l *Logger) emit(isError bool, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	line := msg
	if l.format == "json" {
		line = fmt.Sprintf(`{"time":%q,"level":%q,"message":%q}`, time.Now().Format(time.RFC3339), levelLabel(isError), msg)
	} else if isError {
		line = "ERROR: " + msg
	}
	l.write(line, isError)
}

func (l *Logger) write(line string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// The file sink always receives every message; sampling only gates the
	// console — don't drop what's being audited, only what's scrolling past
	// an operator.
	if l.fileLog != nil {
		l.fileLog.Println(line)
		return
	}

	l.counter++
	if l.counter%l.logEvery != 0 {
		return
	}
	if isError {
		l.stderr.Println(line)
	} else if l.level >= LevelVerbose {
		l.stdout.Println(line)
	}
}

// SetLevel changes the active verbosity.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the active verbosity.
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogDecode reports the outcome of a message.Parse call: the message type
// byte, sequence number, and byte length, or the error path when decoding
// failed. A one-line-per-attempt shape, adapted from a request/response
// log pair to a single decode attempt.
func (l *Logger) LogDecode(msgType uint8, sequence uint32, byteLen int, err error) {
	if err != nil {
		l.Info("DECODE FAILED type=%d seq=%d (%d bytes): %v", msgType, sequence, byteLen, err)
		return
	}
	l.Verbose("DECODE OK type=%d seq=%d (%d bytes)", msgType, sequence, byteLen)
}

// LogCompare reports a compare.Report outcome: the mode and mismatch count.
func (l *Logger) LogCompare(mode string, mismatches int) {
	if mismatches == 0 {
		l.Verbose("COMPARE %s: match", mode)
	} else {
		l.Info("COMPARE %s: %d mismatch(es)", mode, mismatches)
	}
}

// LogHex logs hex data, byte-paired with spaces, at Debug level only.
func (l *Logger) LogHex(label string, data []byte) {
	if l.level < LevelDebug {
		return
	}
	hexStr := fmt.Sprintf("%x", data)
	var b strings.Builder
	for i := 0; i < len(hexStr); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i+2 <= len(hexStr) {
			b.WriteString(hexStr[i : i+2])
		} else {
			b.WriteString(hexStr[i:])
		}
	}
	l.Debug("%s: %s", label, b.String())
}

// MultiWriter fans writes out to every attached io.Writer: used for a tee
// between a pcap capture file and a live console view.
type MultiWriter struct {
	writers []io.Writer
}

// NewMultiWriter constructs a MultiWriter over the given writers.
func NewMultiWriter(writers ...io.Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write implements io.Writer, returning the first error encountered.
func (m *MultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range m.writers {
		n, err = w.Write(p)
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}
