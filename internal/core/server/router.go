package server

import (
	"fmt"
	"net/http"
	"time"
)

// BuildServer wraps an engine in an http.Server with sane edge timeouts.
// Handler-level deadlines live in the middleware chain; these only guard
// against slow clients.
func BuildServer(addr string, h http.Handler, read, write, idle time.Duration) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        h,
		ReadTimeout:    read,
		WriteTimeout:   write,
		IdleTimeout:    idle,
		MaxHeaderBytes: 1 << 20,
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
