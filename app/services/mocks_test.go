package services

import (
	"strings"

	"connectly/app/models"
	"connectly/app/repositories"
)

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Username, user.Username) {
			return repositories.ErrDuplicateUsername
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) List() ([]*models.User, error) {
	var users []*models.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) Update(user *models.User) error {
	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(id int) error {
	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int]*models.Post), nextID: 1}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	var posts []*models.Post
	for _, p := range m.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (m *mockPostRepo) ListByAuthor(authorID int) ([]*models.Post, error) {
	var posts []*models.Post
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(id int) (*models.Comment, error) {
	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *mockCommentRepo) List() ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.comments {
		comments = append(comments, c)
	}
	return comments, nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) ListByAuthor(authorID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, c := range m.comments {
		if c.AuthorID == authorID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) Delete(id int) error {
	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

type mockSessionRepo struct {
	sessions map[string]*models.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionRepo) Create(session *models.Session) error {
	m.sessions[session.Token] = session
	return nil
}

func (m *mockSessionRepo) GetByToken(token string) (*models.Session, error) {
	session, exists := m.sessions[token]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return session, nil
}

func (m *mockSessionRepo) Delete(token string) error {
	if _, exists := m.sessions[token]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.sessions, token)
	return nil
}

func (m *mockSessionRepo) DeleteByUser(userID int) error {
	for token, session := range m.sessions {
		if session.UserID == userID {
			delete(m.sessions, token)
		}
	}
	return nil
}
