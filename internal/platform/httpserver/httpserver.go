package httpserver

import (
	"net/http"
	"time"
)

// New builds the engine's HTTP server. The write timeout leaves headroom for
// the synchronous approve/decline endpoints, which hold the request for the
// simulated decision latency.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
