package httpx

import (
	"net/http"
	"sync"

	"allergysafe-be/internal/logger"
	"allergysafe-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter builds the chi mux with the shared middleware stack.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// IntentNavigator records the navigation intents the session store emits so
// the handlers can echo the target route to the client.
type IntentNavigator struct {
	mu   sync.Mutex
	last string
}

func NewIntentNavigator() *IntentNavigator {
	return &IntentNavigator{}
}

func (n *IntentNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = route
}

func (n *IntentNavigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}
