package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// AddComment appends a comment to the post and assigns it an ID unique
// within the post.
func (p *Post) AddComment(comment *Comment) {
	maxID := 0
	for _, c := range p.Comments {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	comment.ID = maxID + 1
	comment.BeforeCreate()
	p.Comments = append(p.Comments, *comment)
}

// FindComment returns the index of the comment matching both id and author,
// or -1 when no comment matches. Folding the author into the lookup means a
// failed ownership check is indistinguishable from a missing comment.
func (p *Post) FindComment(commentID, authorID int) int {
	for i, c := range p.Comments {
		if c.ID == commentID && c.AuthorID == authorID {
			return i
		}
	}
	return -1
}

// RemoveCommentAt removes the comment at index i.
func (p *Post) RemoveCommentAt(i int) {
	p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
}

// AddLike appends userID to the like list. Duplicates are allowed: the like
// list is a multiset, matching the original service's behavior.
func (p *Post) AddLike(userID int) {
	p.Likes = append(p.Likes, userID)
}

// RemoveLike removes one occurrence of userID from the like list.
func (p *Post) RemoveLike(userID int) {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return
		}
	}
}

// LikedBy reports whether userID appears in the like list.
func (p *Post) LikedBy(userID int) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
