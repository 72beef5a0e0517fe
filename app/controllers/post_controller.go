package controllers

import (
	"net/http"
	"strconv"

	"connectly/app/auth"
	"connectly/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	actor := auth.PrincipalFrom(r.Context())
	posts, err := pc.postService.List(actor)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

type createPostRequest struct {
	Content  string `json:"content"`
	PostType string `json:"post_type"`
}

// Create handles publishing a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	post, err := pc.postService.Create(actor, req.Content, req.PostType)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, services.ErrNotFound)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	post, err := pc.postService.Get(actor, id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

type updatePostRequest struct {
	Content string `json:"content"`
}

// Edit handles replacing a post's content
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, services.ErrNotFound)
		return
	}

	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	post, err := pc.postService.Update(actor, id, req.Content)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, services.ErrNotFound)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	if err := pc.postService.Delete(actor, id); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
