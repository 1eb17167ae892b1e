// Package delivery defines the contract every transport front end
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker, ...) with a blocking run loop.
type Delivery interface {
	// Serve runs until the delivery is shut down or fails.
	Serve(ctx context.Context) error
}
