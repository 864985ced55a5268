// Package lifecycle holds shared values for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds the work done inside a single lifecycle hook.
const DefaultTimeout = 10 * time.Second
