// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressTracker handles progress reporting and UX
type ProgressTracker struct {
	writer    io.Writer
	isTTY     bool
	startTime time.Time
	spinner   *progressbar.ProgressBar
	mu        sync.Mutex
}

// NewProgressTracker creates a new progress tracker
func NewProgressTracker(writer io.Writer) *ProgressTracker {
	return &ProgressTracker{
		writer:    writer,
		isTTY:     isTerminal(writer),
		startTime: time.Now(),
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// StartStep begins a new step. On a terminal it spins until the step ends.
func (pt *ProgressTracker) StartStep(stepName string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.startTime = time.Now()
	if !pt.isTTY {
		fmt.Fprintf(pt.writer, "%s...\n", stepName)
		return
	}
	pt.spinner = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(pt.writer),
		progressbar.OptionSetDescription(stepName),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
	_ = pt.spinner.RenderBlank()
}

func (pt *ProgressTracker) stopSpinner() {
	if pt.spinner != nil {
		_ = pt.spinner.Finish()
		pt.spinner = nil
	}
}

// CompleteStep marks a step as completed
func (pt *ProgressTracker) CompleteStep(stepName string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.stopSpinner()
	fmt.Fprintf(pt.writer, "✓ %s (%.1fs)\n", stepName, time.Since(pt.startTime).Seconds())
}

// FailStep marks a step as failed
func (pt *ProgressTracker) FailStep(stepName string, err error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.stopSpinner()
	fmt.Fprintf(pt.writer, "✗ %s: %v\n", stepName, err)
}

// PrintWarning prints a warning message
func (pt *ProgressTracker) PrintWarning(message string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.stopSpinner()
	fmt.Fprintf(pt.writer, "⚠ %s\n", message)
}
