// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runner and stopped through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
