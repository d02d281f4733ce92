// Package guard gates portal pages on the presence of a session token.
// Token presence is the only signal consulted: an expired-but-present token
// still passes, and the first backend call is responsible for detecting the
// expiry and bouncing the visitor back to login.
package guard

import (
	"net/http"

	"shipfront/internal/session"
)

// Navigator names the portal's two entry points.
type Navigator struct {
	LoginPath string
	HomePath  string
}

// RequireAuthenticated redirects visitors without a token to the login page.
// The wrapped handler never runs for an unauthenticated request.
func RequireAuthenticated(sessions session.Store, nav Navigator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Token(); !ok {
				http.Redirect(w, r, nav.LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectIfAuthenticated guards the login and register pages: a visitor who
// already holds a token goes straight home, without contacting the network.
func RedirectIfAuthenticated(sessions session.Store, nav Navigator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Token(); ok {
				http.Redirect(w, r, nav.HomePath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
