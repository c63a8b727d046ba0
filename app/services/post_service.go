package services

import (
	"microblog/app/models"
	"microblog/app/repositories"
)

// PostService handles business logic for posts, their embedded comments and
// likes, and user lookups.
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

type postInput struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

type commentInput struct {
	Body string `validate:"required"`
}

// CreatePost creates a new post authored by authorID
func (s *PostService) CreatePost(title, content string, tags []string, authorID int) (*models.Post, error) {
	if err := validate.Struct(postInput{Title: title, Content: content}); err != nil {
		return nil, asValidationError(err)
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		Tags:     tags,
		AuthorID: authorID,
		Comments: []models.Comment{},
		Likes:    []int{},
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost replaces the post's title and content. Author, comments, likes,
// and creation time are preserved. The caller must already hold ownership.
func (s *PostService) UpdatePost(postID int, title, content string) (*models.Post, error) {
	if err := validate.Struct(postInput{Title: title, Content: content}); err != nil {
		return nil, asValidationError(err)
	}

	return s.posts.Patch(postID, func(p *models.Post) error {
		p.Title = title
		p.Content = content
		return nil
	})
}

// DeletePost removes a post and returns the deleted document
func (s *PostService) DeletePost(postID int) (*models.Post, error) {
	return s.posts.Delete(postID)
}

// AddComment appends a comment to the post and returns it
func (s *PostService) AddComment(postID int, body string, authorID int) (*models.Comment, error) {
	if err := validate.Struct(commentInput{Body: body}); err != nil {
		return nil, asValidationError(err)
	}

	comment := models.Comment{AuthorID: authorID, Body: body}
	_, err := s.posts.Patch(postID, func(p *models.Post) error {
		p.AddComment(&comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment replaces a comment's body through an atomic conditional
// patch that matches post ID, comment ID, and comment author at once. When
// any of the three conditions fails the result is ErrNotFound, without
// revealing which condition was false.
func (s *PostService) UpdateComment(postID, commentID, authorID int, body string) (*models.Post, error) {
	return s.posts.Patch(postID, func(p *models.Post) error {
		i := p.FindComment(commentID, authorID)
		if i < 0 {
			return repositories.ErrNotFound
		}
		p.Comments[i].Body = body
		return nil
	})
}

// DeleteComment removes a comment under the same three-way match as
// UpdateComment.
func (s *PostService) DeleteComment(postID, commentID, authorID int) (*models.Post, error) {
	return s.posts.Patch(postID, func(p *models.Post) error {
		i := p.FindComment(commentID, authorID)
		if i < 0 {
			return repositories.ErrNotFound
		}
		p.RemoveCommentAt(i)
		return nil
	})
}

// LikePost appends userID to the post's like list. Likes are not
// deduplicated: liking twice records two entries.
func (s *PostService) LikePost(postID, userID int) (*models.Post, error) {
	return s.posts.Patch(postID, func(p *models.Post) error {
		p.AddLike(userID)
		return nil
	})
}

// UnlikePost removes one occurrence of userID from the post's like list
func (s *PostService) UnlikePost(postID, userID int) (*models.Post, error) {
	return s.posts.Patch(postID, func(p *models.Post) error {
		p.RemoveLike(userID)
		return nil
	})
}

// GetUser retrieves a user's profile
func (s *PostService) GetUser(userID int) (*models.User, error) {
	return s.users.GetByID(userID)
}

// GetUserFeed aggregates a user's activity: posts they authored, comments
// they wrote, and posts they liked.
func (s *PostService) GetUserFeed(userID int) (*models.Feed, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.List()
	if err != nil {
		return nil, err
	}

	feed := &models.Feed{
		User:     user,
		Posts:    []*models.Post{},
		Comments: []models.FeedComment{},
		Liked:    []*models.Post{},
	}
	for _, post := range posts {
		if post.AuthorID == userID {
			feed.Posts = append(feed.Posts, post)
		}
		for _, comment := range post.Comments {
			if comment.AuthorID == userID {
				feed.Comments = append(feed.Comments, models.FeedComment{
					PostID:  post.ID,
					Comment: comment,
				})
			}
		}
		if post.LikedBy(userID) {
			feed.Liked = append(feed.Liked, post)
		}
	}
	return feed, nil
}
