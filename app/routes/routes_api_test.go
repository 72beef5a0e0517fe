package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"connectly/app/repositories"

	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("unauthenticated caller can register", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/users/create/", "", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "supersecret",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.NotContains(t, w.Body.String(), "supersecret")

		var res struct {
			ID int `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Greater(t, res.ID, 0)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/users/create/", "", map[string]string{
			"username": "alice",
			"email":    "second@example.com",
			"password": "supersecret",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/users/create/", "", map[string]string{
			"username": "bob",
			"email":    "not-an-email",
			"password": "supersecret",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserAdminEndpoints(t *testing.T) {
	router, db := setupTestRouter(t)

	registerUser(t, router, "admin", "admin@example.com", "supersecret")
	promoteAdmin(t, db, "admin")
	memberID := registerUser(t, router, "member", "member@example.com", "supersecret")

	adminToken := loginUser(t, router, "admin", "supersecret")
	memberToken := loginUser(t, router, "member", "supersecret")

	t.Run("list requires admin", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/users/", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(t, router, "GET", "/users/", memberToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = doRequest(t, router, "GET", "/users/", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "supersecret")
	})

	t.Run("update requires admin and existing target", func(t *testing.T) {
		body := map[string]string{"email": "changed@example.com"}

		w := doRequest(t, router, "PUT", "/users/update/1/", memberToken, body)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = doRequest(t, router, "PUT", "/users/update/999/", adminToken, body)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(t, router, "PUT", "/users/update/2/", adminToken, body)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete requires admin", func(t *testing.T) {
		w := doRequest(t, router, "DELETE", "/users/delete/1/", memberToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = doRequest(t, router, "DELETE", "/users/delete/999/", adminToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete cascades to the member's content", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/posts/", memberToken, map[string]string{"content": "doomed"})
		require.Equal(t, http.StatusCreated, w.Code)
		var post struct {
			ID int `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

		w = doRequest(t, router, "POST", "/comments/", memberToken, map[string]interface{}{
			"text": "own comment", "post": post.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(t, router, "DELETE", "/users/delete/2/", adminToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		postRepo := repositories.NewBadgerPostRepository(db)
		posts, err := postRepo.ListByAuthor(memberID)
		require.NoError(t, err)
		require.Empty(t, posts)

		commentRepo := repositories.NewBadgerCommentRepository(db)
		comments, err := commentRepo.ListByAuthor(memberID)
		require.NoError(t, err)
		require.Empty(t, comments)

		// The deleted member's token no longer authenticates
		w = doRequest(t, router, "GET", "/posts/", memberToken, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPostEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	registerUser(t, router, "carol", "carol@example.com", "supersecret")
	registerUser(t, router, "dave", "dave@example.com", "supersecret")
	carolToken := loginUser(t, router, "carol", "supersecret")
	daveToken := loginUser(t, router, "dave", "supersecret")

	t.Run("create defaults post type and forces author", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/posts/", carolToken, map[string]interface{}{
			"content": "hello",
			"author":  999,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var post struct {
			ID       int    `json:"id"`
			PostType string `json:"post_type"`
			Author   int    `json:"author"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		require.Equal(t, "text", post.PostType)
		require.Equal(t, 1, post.Author)
	})

	t.Run("list is open to any authenticated user", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/posts/", daveToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, "GET", "/posts/", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-author gets 404, not 403", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/posts/1/", daveToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(t, router, "PUT", "/posts/1/", daveToken, map[string]string{"content": "stolen"})
		require.Equal(t, http.StatusNotFound, w.Code)

		w = doRequest(t, router, "DELETE", "/posts/1/", daveToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("author can read, update and delete", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/posts/1/", carolToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, "PUT", "/posts/1/", carolToken, map[string]string{"content": "edited"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "edited")

		w = doRequest(t, router, "DELETE", "/posts/1/", carolToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, router, "GET", "/posts/1/", carolToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body is a validation failure", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/posts/", carolToken, map[string]string{"content": ""})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	registerUser(t, router, "erin", "erin@example.com", "supersecret")
	registerUser(t, router, "frank", "frank@example.com", "supersecret")
	erinToken := loginUser(t, router, "erin", "supersecret")
	frankToken := loginUser(t, router, "frank", "supersecret")

	w := doRequest(t, router, "POST", "/posts/", erinToken, map[string]string{"content": "a post"})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("any authenticated user can comment", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/comments/", frankToken, map[string]interface{}{
			"text": "nice", "post": 1,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var comment struct {
			Author int `json:"author"`
			Post   int `json:"post"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
		require.Equal(t, 2, comment.Author)
		require.Equal(t, 1, comment.Post)
	})

	t.Run("dangling post reference is 400, not 404", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/comments/", frankToken, map[string]interface{}{
			"text": "nice", "post": 999,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list is open to any authenticated user", func(t *testing.T) {
		w := doRequest(t, router, "GET", "/comments/", erinToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, "GET", "/comments/", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unauthenticated comment creation is rejected", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/comments/", "", map[string]interface{}{
			"text": "nice", "post": 1,
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	registerUser(t, router, "grace", "grace@example.com", "supersecret")

	t.Run("bad credentials are rejected", func(t *testing.T) {
		w := doRequest(t, router, "POST", "/auth/login/", "", map[string]string{
			"username": "grace", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		token := loginUser(t, router, "grace", "supersecret")

		w := doRequest(t, router, "GET", "/posts/", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, "POST", "/auth/logout/", token, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doRequest(t, router, "GET", "/posts/", token, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
