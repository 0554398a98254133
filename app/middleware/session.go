package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie under which the login session lives.
const SessionName = "corkboard_session"

type contextKey string

const actorKey contextKey = "actor_id"

// ResolveActor reads the login session once per request and, when a user is
// logged in, threads their ID through the request context. Handlers and
// services below this point take an explicit actor ID; there is no ambient
// current-user state.
func ResolveActor(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err == nil {
				if id, ok := session.Values["user_id"].(int); ok && id > 0 {
					r = r.WithContext(context.WithValue(r.Context(), actorKey, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorID returns the logged-in user's ID from the request context, or
// false when the request is anonymous.
func ActorID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(actorKey).(int)
	return id, ok
}

// WithActor stamps an actor ID onto a request, for tests that bypass the
// session store.
func WithActor(r *http.Request, id int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorKey, id))
}

// RequireLogin refuses anonymous requests. JSON clients get a 401; browser
// flows are redirected to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ActorID(r); !ok {
			if r.Header.Get("Accept") == "application/json" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"login required"}`))
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
