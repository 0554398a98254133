package repositories

import (
	"sort"

	"corkboard/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a reply. The parent thread is verified inside the same
// transaction, so a reply can never land in a thread that a concurrent
// cascade delete is removing.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(threadKey(post.ThreadID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByThread retrieves a thread's posts in chronological reply order
func (r *BadgerPostRepository) ListByThread(threadID int) ([]*models.Post, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		posts, err = postsOfThread(txn, threadID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete removes a post by ID. The thread's first post is re-derived inside
// the delete transaction: if the target is the first post, the thread and
// all its posts go with it; otherwise only the single post row is removed.
// Any failure discards the transaction, so no partial deletion is visible.
func (r *BadgerPostRepository) Delete(id int) (models.DeleteOutcome, error) {
	outcome := models.PostDeleted

	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		siblings, err := postsOfThread(txn, post.ThreadID)
		if err != nil {
			return err
		}

		var first *models.Post
		for _, sibling := range siblings {
			if first == nil || models.PostBefore(sibling, first) {
				first = sibling
			}
		}

		if first != nil && first.ID == post.ID {
			// The opening post defines the thread: removing it removes the
			// whole conversation.
			outcome = models.ThreadDeleted
			for _, sibling := range siblings {
				if err := txn.Delete(postKey(sibling.ID)); err != nil {
					return err
				}
			}
			return txn.Delete(threadKey(post.ThreadID))
		}

		return txn.Delete(postKey(post.ID))
	})

	if err != nil {
		return models.PostDeleted, err
	}
	return outcome, nil
}

// postsOfThread scans all posts belonging to a thread within txn and sorts
// them into reply order.
func postsOfThread(txn *badger.Txn, threadID int) ([]*models.Post, error) {
	var posts []*models.Post

	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(PostKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var post models.Post
		err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
		if err != nil {
			return nil, err
		}

		if post.ThreadID == threadID {
			p := post
			posts = append(posts, &p)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		return models.PostBefore(posts[i], posts[j])
	})
	return posts, nil
}
