// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/ux"
)

// ConsoleNotifier prints toasts as command output: errors with a red X,
// everything else as a plain line.
func ConsoleNotifier(out *ux.UserLog) notify.Notifier {
	return notify.Func(func(level notify.Level, message string) {
		if out == nil {
			return
		}
		if level == notify.Error {
			out.RedXToUser("%s", message)
			return
		}
		out.PrintToUser("%s", message)
	})
}
