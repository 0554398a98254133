package services

import (
	"strings"

	"corkboard/app/models"
	"corkboard/app/repositories"
)

// PostService handles business logic for posts, including the per-action
// ownership checks that gate update and delete.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Reply appends a post to a thread. Any authenticated user may reply; only
// the content is validated. Returns repositories.ErrNotFound if the thread
// is absent.
func (s *PostService) Reply(actorID, threadID int, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	post := &models.Post{
		Content:  content,
		ThreadID: threadID,
		AuthorID: actorID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// GetPostForEdit retrieves a post only if the actor owns it
func (s *PostService) GetPostForEdit(actorID, postID int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if !Authorized(actorID, post.AuthorID) {
		return nil, ErrNotOwner
	}
	return post, nil
}

// UpdatePost replaces a post's content. Only the author may update, and
// content is the only field that changes.
func (s *PostService) UpdatePost(actorID, postID int, content string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if !Authorized(actorID, post.AuthorID) {
		return nil, ErrNotOwner
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	post.Content = content
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post after an ownership check. If the post opens its
// thread, the whole thread is deleted; the outcome reports which happened.
func (s *PostService) DeletePost(actorID, postID int) (models.DeleteOutcome, *models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return models.PostDeleted, nil, err
	}
	if !Authorized(actorID, post.AuthorID) {
		return models.PostDeleted, nil, ErrNotOwner
	}

	outcome, err := s.postRepo.Delete(postID)
	if err != nil {
		return models.PostDeleted, nil, err
	}
	return outcome, post, nil
}
