package repositories

import (
	"testing"
	"time"

	"corkboard/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedThread(t *testing.T, threads *BadgerThreadRepository, title string, authorID int) *models.Thread {
	t.Helper()
	thread := &models.Thread{Title: title, AuthorID: authorID}
	first := &models.Post{Content: "opening " + title, AuthorID: authorID}
	require.NoError(t, threads.CreateWithFirstPost(thread, first))
	return thread
}

func TestBadgerPostRepositoryCreate(t *testing.T) {
	db := setupTestDB(t)
	threads := NewBadgerThreadRepository(db)
	posts := NewBadgerPostRepository(db)

	thread := seedThread(t, threads, "T1", 1)

	t.Run("reply to existing thread", func(t *testing.T) {
		post := &models.Post{Content: "a reply", ThreadID: thread.ID, AuthorID: 2}
		err := posts.Create(post)
		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("reply to missing thread", func(t *testing.T) {
		post := &models.Post{Content: "lost", ThreadID: 999, AuthorID: 2}
		err := posts.Create(post)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBadgerPostRepositoryListOrder(t *testing.T) {
	db := setupTestDB(t)
	threads := NewBadgerThreadRepository(db)
	posts := NewBadgerPostRepository(db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	thread := &models.Thread{Title: "T1", AuthorID: 1, CreatedAt: base}
	first := &models.Post{Content: "first", AuthorID: 1, CreatedAt: base}
	require.NoError(t, threads.CreateWithFirstPost(thread, first))

	// Replies inserted in reverse chronological order
	for i, content := range []string{"third", "second"} {
		post := &models.Post{
			Content:   content,
			ThreadID:  thread.ID,
			AuthorID:  1,
			CreatedAt: base.Add(time.Duration(3-i) * time.Minute),
		}
		require.NoError(t, posts.Create(post))
	}

	got, err := posts.ListByThread(thread.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
	assert.Equal(t, "third", got[2].Content)
}

func TestBadgerPostRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	threads := NewBadgerThreadRepository(db)
	posts := NewBadgerPostRepository(db)

	thread := seedThread(t, threads, "T1", 1)
	got, err := posts.ListByThread(thread.ID)
	require.NoError(t, err)
	post := got[0]

	post.Content = "edited"
	require.NoError(t, posts.Update(post))

	reloaded, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", reloaded.Content)

	missing := &models.Post{ID: 999, Content: "x", ThreadID: thread.ID, AuthorID: 1}
	assert.ErrorIs(t, posts.Update(missing), ErrNotFound)
}

func TestBadgerPostRepositoryDelete(t *testing.T) {
	t.Run("deleting the first post removes the whole thread", func(t *testing.T) {
		db := setupTestDB(t)
		threads := NewBadgerThreadRepository(db)
		posts := NewBadgerPostRepository(db)

		thread := seedThread(t, threads, "T1", 1)
		for i := 0; i < 3; i++ {
			reply := &models.Post{Content: "reply", ThreadID: thread.ID, AuthorID: 2}
			require.NoError(t, posts.Create(reply))
		}
		all, err := posts.ListByThread(thread.ID)
		require.NoError(t, err)
		require.Len(t, all, 4)

		outcome, err := posts.Delete(all[0].ID)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadDeleted, outcome)

		_, err = threads.GetByID(thread.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		remaining, err := posts.ListByThread(thread.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)

		listed, err := threads.List()
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("deleting a reply leaves the thread intact", func(t *testing.T) {
		db := setupTestDB(t)
		threads := NewBadgerThreadRepository(db)
		posts := NewBadgerPostRepository(db)

		thread := seedThread(t, threads, "T1", 1)
		reply := &models.Post{Content: "reply", ThreadID: thread.ID, AuthorID: 2}
		require.NoError(t, posts.Create(reply))

		outcome, err := posts.Delete(reply.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PostDeleted, outcome)

		_, err = threads.GetByID(thread.ID)
		assert.NoError(t, err)

		remaining, err := posts.ListByThread(thread.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.NotEqual(t, reply.ID, remaining[0].ID)
	})

	t.Run("missing post", func(t *testing.T) {
		db := setupTestDB(t)
		posts := NewBadgerPostRepository(db)

		_, err := posts.Delete(123)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("first post decided by timestamp not id", func(t *testing.T) {
		db := setupTestDB(t)
		threads := NewBadgerThreadRepository(db)
		posts := NewBadgerPostRepository(db)

		// The opening post carries a later timestamp than a backdated
		// reply, so the reply is the thread's first post.
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		thread := &models.Thread{Title: "T1", AuthorID: 1, CreatedAt: base}
		opener := &models.Post{Content: "opener", AuthorID: 1, CreatedAt: base.Add(time.Hour)}
		require.NoError(t, threads.CreateWithFirstPost(thread, opener))

		backdated := &models.Post{Content: "earlier", ThreadID: thread.ID, AuthorID: 1, CreatedAt: base}
		require.NoError(t, posts.Create(backdated))

		outcome, err := posts.Delete(opener.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PostDeleted, outcome)

		outcome, err = posts.Delete(backdated.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ThreadDeleted, outcome)
	})
}
