// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a long-running server started by the application root.
type Delivery interface {
	Serve(ctx context.Context) error
}
