package port

//go:generate mockgen -source=runtime_port.go -destination=../mocks/mock_runtime_port.go

import "context"

// Navigator performs page transitions for the UI. The coordinator arbitrates
// redirects; the navigator only executes them.
type Navigator interface {
	// CurrentRoute returns the route the UI currently sits on
	CurrentRoute() string

	// Navigate transitions the UI to the given route
	Navigate(route string) error
}

// KeyValueStore is the local persistent storage the provider caches session
// material in. The coordinator never reads it back for trust decisions; it only
// purges the provider namespace on logout, best-effort.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// PurgeNamespace removes every key under the given prefix and returns the
	// number of keys removed
	PurgeNamespace(ctx context.Context, prefix string) (int, error)
}
