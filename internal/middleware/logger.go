package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger writes one line per request. Server errors are logged at error
// level and client errors at warn, so a production JSON handler at info
// still shows both.
func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrapResponseWriter(w)
			next.ServeHTTP(ww, r)

			attrs := []slog.Attr{
				slog.Int("status", ww.status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			}
			// identity is installed further down the chain, so ww carries it back
			if ww.subject != "" {
				attrs = append(attrs, slog.String("subject", ww.subject))
			}

			logger.LogAttrs(r.Context(), levelFor(ww.status), "request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

type responseWriter struct {
	http.ResponseWriter
	status  int
	subject string
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// noteSubject records the authenticated caller on the shared writer, if any.
func noteSubject(w http.ResponseWriter, r *http.Request) {
	rw, ok := w.(*responseWriter)
	if !ok {
		return
	}
	if id, ok := auth.IdentityFrom(r.Context()); ok {
		rw.subject = id.Subject
	}
}
