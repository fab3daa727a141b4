// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

var Logger *UserLog

type UserLog struct {
	log    *zap.Logger
	writer io.Writer
}

func NewUserLog(log *zap.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = New(log, userwriter)
	}
}

// New returns a UserLog without touching the global one.
func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{
		log:    log,
		writer: userwriter,
	}
}

// Writer is where command output goes.
func (ul *UserLog) Writer() io.Writer {
	return ul.writer
}

// PrintToUser prints msg directly to stdout (command output)
// Does NOT log to avoid duplication - logs should go to stderr separately
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
}

// PrintLineSeparator prints a line separator
func (ul *UserLog) PrintLineSeparator(msg ...string) {
	separator := "=========================================="
	if len(msg) > 0 && msg[0] != "" {
		separator = msg[0]
	}
	_, _ = fmt.Fprintln(ul.writer, separator)
}

// RedXToUser prints a red X error message to the user
func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✗ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Error(formattedMsg)
}

// GreenCheckmarkToUser prints a green checkmark success message to the user
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✓ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Info(formattedMsg)
}

// PrintError prints a visible error message with ERROR prefix to the user
func (ul *UserLog) PrintError(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintf(ul.writer, "\nERROR: %s\n\n", formattedMsg)
	ul.log.Error(formattedMsg)
}

// DefaultTable creates a table on the user writer with the given headers.
func (ul *UserLog) DefaultTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(ul.writer)
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	return table
}

// PrintKeyValues renders two-column rows as a table.
func (ul *UserLog) PrintKeyValues(headers [2]string, rows [][2]string) {
	table := ul.DefaultTable(headers[0], headers[1])
	for _, row := range rows {
		_ = table.Append([]string{row[0], row[1]})
	}
	_ = table.Render()
}
