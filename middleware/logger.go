// middleware/logger.go
package middleware

import (
	"log"
	"net/http"
	"time"
)

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		// İsteği logla
		log.Printf("[%s] %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}
