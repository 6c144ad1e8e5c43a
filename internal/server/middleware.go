package server

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// requestID tags each request with a uuid, reusing a client-supplied
// X-Request-Id when present. The id is stored under chi's key so
// middleware.GetReqID works downstream.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("http request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

type credentials struct {
	user string
	hash []byte
}

func (c *credentials) valid(user, pass string) bool {
	if subtle.ConstantTimeCompare([]byte(user), []byte(c.user)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(pass)) == nil
}

func (c *credentials) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !c.valid(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="errboard", charset="UTF-8"`)
			writeError(w, http.StatusUnauthorized, errorBody{Code: codeUnauthorized, Message: "authentication required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
