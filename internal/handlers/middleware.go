package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Recover wraps a handler so a panic in one request returns a generic 500
// instead of killing the process.
func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Panic handling %s %s: %v", r.Method, r.URL.Path, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error":     "internal server error",
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
			}
		}()
		next(w, r)
	}
}

// Health reports liveness plus a database ping.
func Health(ping func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := ping(); err != nil {
			log.Printf("Health check db ping failed: %v", err)
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
