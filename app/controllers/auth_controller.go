package controllers

import (
	"net/http"
	"strings"

	"connectly/app/auth"
	"connectly/app/services"
)

// AuthController handles login and logout
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	session, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": session.Token})
}

// Logout discards the caller's session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	actor := auth.PrincipalFrom(r.Context())

	token := ""
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimSpace(header[len("Bearer "):])
	}

	if err := ac.authService.Logout(actor, token); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
