// Package lifecycle holds shared timing for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook.
const DefaultTimeout = 10 * time.Second
