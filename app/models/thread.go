package models

import (
	"errors"
	"time"
)

// Validate checks if the thread meets all validation requirements
func (t *Thread) Validate() error {
	if err := validate.Struct(t); err != nil {
		return err
	}

	if t.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (t *Thread) BeforeCreate() {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
}

// AddPost appends a post to the thread's loaded post list
func (t *Thread) AddPost(post *Post) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}

	post.ThreadID = t.ID
	t.Posts = append(t.Posts, post)
	return nil
}

// ThreadAfter reports whether a comes before b in newest-first thread order.
// Timestamp ties fall back to ID so the ordering is total.
func ThreadAfter(a, b *Thread) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// FirstPost returns the thread's opening post: the earliest CreatedAt among
// the loaded posts, lowest ID on a timestamp tie. Returns nil if no posts
// are loaded.
func (t *Thread) FirstPost() *Post {
	var first *Post
	for _, post := range t.Posts {
		if first == nil || PostBefore(post, first) {
			first = post
		}
	}
	return first
}
