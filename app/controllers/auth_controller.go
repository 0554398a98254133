package controllers

import (
	"net/http"

	"corkboard/app/middleware"
	"corkboard/app/monitoring"
	"corkboard/app/services"

	"github.com/gorilla/sessions"
)

// AuthController handles registration, login and logout
type AuthController struct {
	userService *services.UserService
	store       sessions.Store
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, store sessions.Store) *AuthController {
	return &AuthController{
		userService: userService,
		store:       store,
	}
}

// Register handles creating a new account
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r, "username", "password")
	if err != nil {
		refuse(w, r, services.ErrEmptyUsername, "/")
		return
	}

	user, err := ac.userService.Register(fields["username"], fields["password"])
	if err != nil {
		refuse(w, r, err, "/")
		return
	}
	monitoring.RegisterSuccess.Inc()

	if wantsJSON(r) {
		out := *user
		out.Sanitize()
		sendJSON(w, http.StatusCreated, &out)
	} else {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// Login handles establishing a session
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r, "username", "password")
	if err != nil {
		refuse(w, r, services.ErrInvalidCredentials, "/")
		return
	}

	user, err := ac.userService.Authenticate(fields["username"], fields["password"])
	if err != nil {
		monitoring.LoginFailure.Inc()
		refuse(w, r, err, "/")
		return
	}

	session, _ := ac.store.Get(r, middleware.SessionName)
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		refuse(w, r, err, "/")
		return
	}
	monitoring.LoginSuccess.Inc()

	if wantsJSON(r) {
		out := *user
		out.Sanitize()
		sendJSON(w, http.StatusOK, &out)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout handles clearing the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := ac.store.Get(r, middleware.SessionName)
	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		refuse(w, r, err, "/")
		return
	}

	if wantsJSON(r) {
		sendJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
