package models

import "time"

// User represents a registered board member. The password is stored only as
// a one-way bcrypt hash.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=1,max=80"`
	PasswordHash string    `json:"password_hash,omitempty" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
}

// Thread represents a discussion rooted at one opening post.
type Thread struct {
	ID        int       `json:"id" validate:"gte=0"`
	Title     string    `json:"title" validate:"required,max=100"`
	AuthorID  int       `json:"author_id" validate:"required,gte=1"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []*Post   `json:"posts,omitempty" validate:"-"`
}

// Post represents a single message belonging to exactly one thread.
type Post struct {
	ID        int       `json:"id" validate:"gte=0"`
	Content   string    `json:"content" validate:"required"`
	ThreadID  int       `json:"thread_id" validate:"required,gte=1"`
	AuthorID  int       `json:"author_id" validate:"required,gte=1"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteOutcome reports what a post deletion removed.
type DeleteOutcome int

const (
	// PostDeleted means a single non-first post was removed.
	PostDeleted DeleteOutcome = iota
	// ThreadDeleted means the post was the thread's first, so the whole
	// thread and all its posts were removed.
	ThreadDeleted
)

func (o DeleteOutcome) String() string {
	if o == ThreadDeleted {
		return "thread_deleted"
	}
	return "post_deleted"
}
