// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
// Serve blocks until the server stops; shutdown happens through lifecycle
// hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
