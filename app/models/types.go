package models

import "time"

// User represents a registered account. The password hash is excluded from
// JSON so it can never leak into a response body.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Post represents a blog post. Comments and likes are embedded and persist
// as part of the post document.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Tags      []string  `json:"tags,omitempty"`
	AuthorID  int       `json:"author" validate:"required"`
	Comments  []Comment `json:"comments"`
	Likes     []int     `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment represents a comment embedded in a post. Its ID is unique within
// the owning post only.
type Comment struct {
	ID        int       `json:"id"`
	AuthorID  int       `json:"author" validate:"required"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// Feed is the aggregate activity view for one user: posts they authored,
// comments they wrote (paired with the post they live on), and posts they
// liked.
type Feed struct {
	User     *User         `json:"user"`
	Posts    []*Post       `json:"posts"`
	Comments []FeedComment `json:"comments"`
	Liked    []*Post       `json:"liked"`
}

// FeedComment pairs a comment with the ID of the post it belongs to.
type FeedComment struct {
	PostID  int     `json:"postId"`
	Comment Comment `json:"comment"`
}
