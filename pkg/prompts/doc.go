// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

Every prompt resolves to a Result: either Confirmed with the entered value,
or Cancelled when the user backs out (ctrl+c, ctrl+d, esc in the dashboard
modal). Cancellation is not an error; callers abort silently on it.

# Mode Detection

Non-interactive mode is enabled when ANY of these is true:

  - CHAINDASH_NON_INTERACTIVE=1/true/yes/on environment variable
  - CI=1/true environment variable (GitHub Actions, GitLab CI, etc.)
  - the --non-interactive flag
  - stdin is not a TTY (piped/redirected/scripted)

In non-interactive mode every prompt fails with ErrNonInteractive, so values
must come from arguments or flags:

	chaindash stake 1.5
	chaindash miner start --password-file ./pw
*/
package prompts
