// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides logging and metrics.
package observability

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// logger is the default implementation, backed by apex/log.
type logger struct {
	entry *log.Entry
}

// NewLoggerTo creates a logger writing to w at the given level.
// Unknown levels fall back to info.
func NewLoggerTo(w io.Writer, level string) Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	l := &log.Logger{
		Handler: &lineHandler{w: w},
		Level:   lvl,
	}
	return &logger{entry: log.NewEntry(l)}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return NewLoggerTo(io.Discard, "fatal")
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.withFields(fields).Debug(msg)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.withFields(fields).Info(msg)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.withFields(fields).Warn(msg)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.withFields(fields).Error(msg)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{entry: l.withFields(fields)}
}

func (l *logger) withFields(fields []Field) *log.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	f := make(log.Fields, len(fields))
	for _, field := range fields {
		f[field.Key] = field.Value
	}
	return l.entry.WithFields(f)
}

// lineHandler writes one "timestamp L message key=value" line per entry.
type lineHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// HandleLog implements the log.Handler interface
func (h *lineHandler) HandleLog(e *log.Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", e.Timestamp.Format("2006-01-02 15:04:05"),
		strings.ToUpper(e.Level.String()), e.Message)
	for _, name := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint32 creates a uint32 field.
func Uint32(key string, value uint32) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
