package services

import (
	"strings"

	"corkboard/app/models"
	"corkboard/app/repositories"
)

// ThreadService handles business logic for threads
type ThreadService struct {
	threadRepo repositories.ThreadRepository
	postRepo   repositories.PostRepository
}

// NewThreadService creates a new ThreadService
func NewThreadService(threadRepo repositories.ThreadRepository, postRepo repositories.PostRepository) *ThreadService {
	return &ThreadService{
		threadRepo: threadRepo,
		postRepo:   postRepo,
	}
}

// CreateThread creates a thread and its opening post for the given actor.
// A blank title or content is rejected before anything is written.
func (s *ThreadService) CreateThread(actorID int, title, content string) (*models.Thread, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	thread := &models.Thread{
		Title:    title,
		AuthorID: actorID,
	}
	first := &models.Post{
		Content:  content,
		AuthorID: actorID,
	}
	if err := s.threadRepo.CreateWithFirstPost(thread, first); err != nil {
		return nil, err
	}
	return thread, nil
}

// ListThreads retrieves all threads, newest first
func (s *ThreadService) ListThreads() ([]*models.Thread, error) {
	return s.threadRepo.List()
}

// GetThread retrieves a thread together with its posts in reply order
func (s *ThreadService) GetThread(id int) (*models.Thread, error) {
	thread, err := s.threadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByThread(id)
	if err != nil {
		return nil, err
	}
	thread.Posts = posts

	return thread, nil
}
