// Package middleware holds the HTTP wrappers shared by the routes.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aanand-mishra/employee-dashboard/internal/utils/response"
)

// Session is what the gate needs from the session store.
type Session interface {
	IsAuthenticated() bool
	Token() string
}

var errUnauthenticated = errors.New("not logged in")

// RequireSession rejects requests with 401 while the session flag is
// false. A request that does carry a bearer token must carry the current
// one.
func RequireSession(sess Session, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sess.IsAuthenticated() {
			slog.Debug("rejecting request without session", slog.String("path", r.URL.Path))
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errUnauthenticated))
			return
		}

		if h := r.Header.Get("Authorization"); h != "" {
			token, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || token != sess.Token() {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errUnauthenticated))
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
