package rest

import (
	"log/slog"
	"sync"

	"session-service/app/port"
)

// RedirectBroker implements port.Navigator for a headless deployment. It
// records the route the coordinator last requested; the frontend polls the
// session endpoint and performs the actual page transition.
type RedirectBroker struct {
	mu     sync.RWMutex
	route  string
	logger *slog.Logger
}

// NewRedirectBroker creates a broker starting at the given route
func NewRedirectBroker(initialRoute string, logger *slog.Logger) *RedirectBroker {
	return &RedirectBroker{
		route:  initialRoute,
		logger: logger,
	}
}

// CurrentRoute returns the route the UI currently sits on
func (b *RedirectBroker) CurrentRoute() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.route
}

// Navigate records the transition
func (b *RedirectBroker) Navigate(route string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.route != route {
		b.logger.Info("route transition", "from", b.route, "to", route)
	}
	b.route = route
	return nil
}

var _ port.Navigator = (*RedirectBroker)(nil)
