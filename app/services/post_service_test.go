package services

import (
	"testing"

	"corkboard/app/models"
	"corkboard/app/repositories"
	"corkboard/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = 1
	bob   = 2
)

func newBoard(t *testing.T) (*ThreadService, *PostService, *models.Thread) {
	t.Helper()
	threadRepo, postRepo := mock.NewBoardRepositories()
	threadService := NewThreadService(threadRepo, postRepo)
	postService := NewPostService(postRepo)

	thread, err := threadService.CreateThread(alice, "First thread", "hello")
	require.NoError(t, err)
	return threadService, postService, thread
}

func TestPostServiceReply(t *testing.T) {
	_, service, thread := newBoard(t)

	t.Run("any authenticated user may reply", func(t *testing.T) {
		post, err := service.Reply(bob, thread.ID, "hi")
		require.NoError(t, err)
		assert.Equal(t, bob, post.AuthorID)
		assert.Equal(t, thread.ID, post.ThreadID)
	})

	t.Run("blank content", func(t *testing.T) {
		_, err := service.Reply(bob, thread.ID, " ")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("missing thread", func(t *testing.T) {
		_, err := service.Reply(bob, 404, "hi")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestPostServiceUpdate(t *testing.T) {
	threadService, service, thread := newBoard(t)

	loaded, err := threadService.GetThread(thread.ID)
	require.NoError(t, err)
	opener := loaded.Posts[0]

	t.Run("author updates own post", func(t *testing.T) {
		post, err := service.UpdatePost(alice, opener.ID, "hello, edited")
		require.NoError(t, err)
		assert.Equal(t, "hello, edited", post.Content)
	})

	t.Run("other user is refused and the post is unchanged", func(t *testing.T) {
		_, err := service.UpdatePost(bob, opener.ID, "hijacked")
		assert.ErrorIs(t, err, ErrNotOwner)

		post, err := service.GetPost(opener.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello, edited", post.Content)
	})

	t.Run("blank content", func(t *testing.T) {
		_, err := service.UpdatePost(alice, opener.ID, "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := service.UpdatePost(alice, 404, "content")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestPostServiceGetForEdit(t *testing.T) {
	threadService, service, thread := newBoard(t)

	loaded, err := threadService.GetThread(thread.ID)
	require.NoError(t, err)
	opener := loaded.Posts[0]

	post, err := service.GetPostForEdit(alice, opener.ID)
	require.NoError(t, err)
	assert.Equal(t, opener.ID, post.ID)

	_, err = service.GetPostForEdit(bob, opener.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestPostServiceDelete(t *testing.T) {
	t.Run("deleting the first post deletes the thread", func(t *testing.T) {
		threadService, service, thread := newBoard(t)
		_, err := service.Reply(bob, thread.ID, "hi")
		require.NoError(t, err)

		loaded, err := threadService.GetThread(thread.ID)
		require.NoError(t, err)
		opener := loaded.Posts[0]

		outcome, deleted, err := service.DeletePost(alice, opener.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadDeleted, outcome)
		assert.Equal(t, opener.ID, deleted.ID)

		_, err = threadService.GetThread(thread.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		threads, err := threadService.ListThreads()
		require.NoError(t, err)
		assert.Empty(t, threads)
	})

	t.Run("deleting a reply keeps the thread", func(t *testing.T) {
		threadService, service, thread := newBoard(t)
		reply, err := service.Reply(bob, thread.ID, "hi")
		require.NoError(t, err)

		outcome, _, err := service.DeletePost(bob, reply.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PostDeleted, outcome)

		loaded, err := threadService.GetThread(thread.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Posts, 1)
	})

	t.Run("other user is refused and nothing is deleted", func(t *testing.T) {
		threadService, service, thread := newBoard(t)
		loaded, err := threadService.GetThread(thread.ID)
		require.NoError(t, err)
		opener := loaded.Posts[0]

		_, _, err = service.DeletePost(bob, opener.ID)
		assert.ErrorIs(t, err, ErrNotOwner)

		loaded, err = threadService.GetThread(thread.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Posts, 1)
	})

	t.Run("missing post", func(t *testing.T) {
		_, service, _ := newBoard(t)
		_, _, err := service.DeletePost(alice, 404)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
