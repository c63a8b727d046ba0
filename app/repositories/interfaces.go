package repositories

import "microblog/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// PostRepository defines the interface for post data access. A post is one
// document: comments and likes travel with it, and Patch is the only way to
// mutate them.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) (*models.Post, error)
	Patch(id int, apply func(*models.Post) error) (*models.Post, error)
}
