package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"message":"Tempo limite da requisição excedido."}`

// Timeout bounds each request with http.TimeoutHandler. The handler's
// context is cancelled when d elapses and the client gets a JSON 503.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			th.ServeHTTP(&timeoutTypeWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutTypeWriter labels the bare 503 that TimeoutHandler writes as JSON.
type timeoutTypeWriter struct {
	http.ResponseWriter
}

func (tw *timeoutTypeWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && tw.Header().Get("Content-Type") == "" {
		tw.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	tw.ResponseWriter.WriteHeader(code)
}
