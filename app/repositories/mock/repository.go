package mock

import (
	"sync"

	"microblog/app/models"
	"microblog/app/repositories"
)

// PostRepository is an in-memory PostRepository for testing
type PostRepository struct {
	mu     sync.Mutex
	posts  map[int]*models.Post
	nextID int
}

// NewPostRepository creates a new mock PostRepository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var posts []*models.Post
	for id := 1; id < m.nextID; id++ {
		if post, ok := m.posts[id]; ok {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[post.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) Delete(id int) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(m.posts, id)
	return post, nil
}

func (m *PostRepository) Patch(id int, apply func(*models.Post) error) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	if err := apply(&copied); err != nil {
		return nil, err
	}
	m.posts[id] = &copied
	result := copied
	return &result, nil
}

// UserRepository is an in-memory UserRepository for testing
type UserRepository struct {
	mu     sync.Mutex
	users  map[int]*models.User
	byName map[string]int
	nextID int
}

// NewUserRepository creates a new mock UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[user.Username]; ok {
		return repositories.ErrConflict
	}
	user.ID = m.nextID
	m.nextID++
	user.BeforeCreate()
	stored := *user
	m.users[user.ID] = &stored
	m.byName[user.Username] = user.ID
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byName[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *m.users[id]
	return &copied, nil
}
