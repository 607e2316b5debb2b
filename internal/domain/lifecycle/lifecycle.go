// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
