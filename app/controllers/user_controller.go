package controllers

import (
	"net/http"
	"strconv"

	"connectly/app/auth"
	"connectly/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for user accounts
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Index handles listing all users. Admin only.
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	actor := auth.PrincipalFrom(r.Context())
	users, err := uc.userService.List(actor)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create handles self-registration. Open to unauthenticated callers.
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	user, err := uc.userService.Create(req.Username, req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      user.ID,
		"message": "User created successfully",
	})
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Update handles partial updates to a user. Admin only.
func (uc *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, services.ErrNotFound)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	user, err := uc.userService.Update(actor, id, req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"id":      user.ID,
		"message": "User updated successfully",
	})
}

// Delete handles deleting a user and everything the account owns. Admin only.
func (uc *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, services.ErrNotFound)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	if err := uc.userService.Delete(actor, id); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
