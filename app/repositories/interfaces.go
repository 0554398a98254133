package repositories

import "corkboard/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// ThreadRepository defines the interface for thread data access
type ThreadRepository interface {
	// CreateWithFirstPost persists a thread together with its opening post
	// in one transaction. Neither row is visible unless both commit.
	CreateWithFirstPost(thread *models.Thread, first *models.Post) error
	GetByID(id int) (*models.Thread, error)
	// List returns all threads ordered by creation time, newest first.
	List() ([]*models.Thread, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create persists a reply. The parent thread's existence is checked in
	// the same transaction as the write.
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	// ListByThread returns a thread's posts in chronological reply order.
	ListByThread(threadID int) ([]*models.Post, error)
	Update(post *models.Post) error
	// Delete removes a post. If the post is its thread's first, the thread
	// and every post in it are removed instead; the outcome reports which
	// happened. The first-post check and all deletes share one transaction.
	Delete(id int) (models.DeleteOutcome, error)
}
