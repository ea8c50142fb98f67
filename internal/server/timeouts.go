// internal/server/timeouts.go
//
// HTTP server constructor with hardened timeouts.
//
// Visitor sites are served from the same process as the editor, so a
// slow client must never pin a connection indefinitely:
//
//   • ReadTimeout   – abort slow-loris headers (10 s)
//   • WriteTimeout  – cap total response time (15 s)
//   • IdleTimeout   – close keep-alives on idle clients (60 s)
//

package server

import (
	"net/http"
	"time"
)

// New constructs an *http.Server with the defaults above.  Callers may
// still inject TLSConfig before serving.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
