// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is a small leveled logger: the same level set and
// enable-by-level filtering as util/logger, stripped of the parent/child
// logger hierarchy and the net/file writers this module has no use for
// (perception runs in one process against one oracle; there is nothing to
// fan log output out to remotely).
package logx

import (
	"fmt"
	"os"
	"time"
)

// Levels to filter log output.
const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// Logger is a minimal leveled logger writing to an io.Writer-like target.
type Logger struct {
	name  string
	level int
	out   *os.File
}

// New creates a logger named name, writing to stderr at INFO level by
// default.
func New(name string) *Logger {
	return &Logger{name: name, level: INFO, out: os.Stderr}
}

// Default is a package-wide logger instance. No other package of this
// module writes to it.
var Default = New("pbp")

// SetLevel sets the minimum level this logger emits.
func (l *Logger) SetLevel(level int) {
	if level < DEBUG || level > ERROR {
		return
	}
	l.level = level
}

func (l *Logger) log(level int, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	fmt.Fprintf(l.out, "%s %-5s %s: %s\n", time.Now().UTC().Format("15:04:05.000"), levelNames[level], l.name, msg)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(WARN, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(ERROR, format, v...) }
