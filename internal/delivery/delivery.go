// Package delivery defines the servers started by the binaries.
package delivery

import "context"

// Delivery is a server started by a binary and stopped through the fx lifecycle
type Delivery interface {
	Serve(ctx context.Context) error
}
