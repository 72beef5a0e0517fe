package controllers

import (
	"net/http"

	"connectly/app/auth"
	"connectly/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index handles listing all comments
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	actor := auth.PrincipalFrom(r.Context())
	comments, err := cc.commentService.List(actor)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

type createCommentRequest struct {
	Text   string `json:"text"`
	PostID int    `json:"post"`
}

// Create handles attaching a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	actor := auth.PrincipalFrom(r.Context())
	comment, err := cc.commentService.Create(actor, req.Text, req.PostID)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, comment)
}
