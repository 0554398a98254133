package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		post := &Post{
			ID:        1,
			Content:   "hello there",
			ThreadID:  1,
			AuthorID:  1,
			CreatedAt: time.Now(),
		}
		assert.NoError(t, post.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		post := &Post{
			ID:        1,
			ThreadID:  1,
			AuthorID:  1,
			CreatedAt: time.Now(),
		}
		assert.Error(t, post.Validate())
	})

	t.Run("zero created_at", func(t *testing.T) {
		post := &Post{
			ID:       1,
			Content:  "hello",
			ThreadID: 1,
			AuthorID: 1,
		}
		assert.Error(t, post.Validate())
	})
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Content: "hello", ThreadID: 1, AuthorID: 1}
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())

	// An existing timestamp is preserved
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post = &Post{Content: "hello", CreatedAt: stamp}
	post.BeforeCreate()
	assert.Equal(t, stamp, post.CreatedAt)
}

func TestPostBefore(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	earlier := &Post{ID: 2, CreatedAt: base}
	later := &Post{ID: 1, CreatedAt: base.Add(time.Second)}
	assert.True(t, PostBefore(earlier, later))
	assert.False(t, PostBefore(later, earlier))

	// Timestamp ties fall back to ID
	a := &Post{ID: 1, CreatedAt: base}
	b := &Post{ID: 2, CreatedAt: base}
	assert.True(t, PostBefore(a, b))
	assert.False(t, PostBefore(b, a))
}
