// Package delivery holds the long-running entry points the application starts.
package delivery

import (
	"context"
)

// Delivery is a server started by main and stopped through the fx lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
