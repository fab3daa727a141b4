// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dashboard

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard until the user quits or ctx is done. The bridge
// must be the prompter and notifier the panels were built with.
func Run(ctx context.Context, panels Panels, bridge *Bridge, opts Options, in io.Reader, out io.Writer) error {
	model := New(ctx, panels, opts)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	bridge.Attach(p)
	defer bridge.Close()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
