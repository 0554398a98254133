package repositories

import (
	"sort"

	"corkboard/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerThreadRepository implements ThreadRepository using BadgerDB
type BadgerThreadRepository struct {
	db *badger.DB
}

// NewBadgerThreadRepository creates a new BadgerThreadRepository
func NewBadgerThreadRepository(db *badger.DB) *BadgerThreadRepository {
	return &BadgerThreadRepository{db: db}
}

// CreateWithFirstPost creates a thread and its opening post atomically. If
// either write fails the transaction is discarded and no orphan thread can
// exist.
func (r *BadgerThreadRepository) CreateWithFirstPost(thread *models.Thread, first *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		threadID, err := getNextID(txn, ThreadSeqKey)
		if err != nil {
			return err
		}
		thread.ID = threadID
		thread.BeforeCreate()

		postID, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		first.ID = postID
		first.ThreadID = thread.ID
		first.BeforeCreate()

		threadData, err := marshalEntity(thread)
		if err != nil {
			return err
		}
		if err := txn.Set(threadKey(thread.ID), threadData); err != nil {
			return err
		}

		postData, err := marshalEntity(first)
		if err != nil {
			return err
		}
		return txn.Set(postKey(first.ID), postData)
	})
}

// GetByID retrieves a thread by ID
func (r *BadgerThreadRepository) GetByID(id int) (*models.Thread, error) {
	var thread models.Thread

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(threadKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &thread)
		})
	})

	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// List retrieves all threads, newest first. Badger iterates in key order,
// which is lexicographic, so ordering is applied after the scan.
func (r *BadgerThreadRepository) List() ([]*models.Thread, error) {
	var threads []*models.Thread

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ThreadKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var thread models.Thread
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &thread)
			})
			if err != nil {
				return err
			}
			threads = append(threads, &thread)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(threads, func(i, j int) bool {
		return models.ThreadAfter(threads[i], threads[j])
	})
	return threads, nil
}
