// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (HTTP server drain, DB ping, sweeper stop).
const DefaultTimeout = 10 * time.Second
