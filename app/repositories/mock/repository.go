package mock

import (
	"sync"

	"corkboard/app/models"
	"corkboard/app/repositories"
)

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

type ThreadRepository struct {
	threads map[int]*models.Thread
	posts   *PostRepository
	nextID  int
	mutex   sync.RWMutex
}

type PostRepository struct {
	posts   map[int]*models.Post
	threads *ThreadRepository
	nextID  int
	mutex   sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

// NewBoardRepositories returns thread and post repositories sharing state,
// so cascade deletes and thread-existence checks behave like the real store.
func NewBoardRepositories() (*ThreadRepository, *PostRepository) {
	threads := &ThreadRepository{
		threads: make(map[int]*models.Thread),
		nextID:  1,
	}
	posts := &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
	threads.posts = posts
	posts.threads = threads
	return threads, posts
}

func (m *UserRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.users = make(map[int]*models.User)
	m.nextID = 1
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return repositories.ErrConflict
		}
	}

	user.ID = m.nextID
	m.nextID++
	user.BeforeCreate()
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// ThreadRepository implementation

func (m *ThreadRepository) CreateWithFirstPost(thread *models.Thread, first *models.Post) error {
	// Lock order is posts then threads, matching PostRepository.Delete.
	m.posts.mutex.Lock()
	defer m.posts.mutex.Unlock()
	m.mutex.Lock()
	defer m.mutex.Unlock()

	thread.ID = m.nextID
	m.nextID++
	thread.BeforeCreate()
	m.threads[thread.ID] = thread

	first.ID = m.posts.nextID
	m.posts.nextID++
	first.ThreadID = thread.ID
	first.BeforeCreate()
	m.posts.posts[first.ID] = first
	return nil
}

func (m *ThreadRepository) GetByID(id int) (*models.Thread, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	thread, exists := m.threads[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return thread, nil
}

func (m *ThreadRepository) List() ([]*models.Thread, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	threads := make([]*models.Thread, 0, len(m.threads))
	for _, thread := range m.threads {
		threads = append(threads, thread)
	}
	sortThreads(threads)
	return threads, nil
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.threads.mutex.RLock()
	_, exists := m.threads.threads[post.ThreadID]
	m.threads.mutex.RUnlock()
	if !exists {
		return repositories.ErrNotFound
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) ListByThread(threadID int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.postsOfThread(threadID), nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) (models.DeleteOutcome, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return models.PostDeleted, repositories.ErrNotFound
	}

	siblings := m.postsOfThread(post.ThreadID)
	if len(siblings) > 0 && siblings[0].ID == post.ID {
		for _, sibling := range siblings {
			delete(m.posts, sibling.ID)
		}
		m.threads.mutex.Lock()
		delete(m.threads.threads, post.ThreadID)
		m.threads.mutex.Unlock()
		return models.ThreadDeleted, nil
	}

	delete(m.posts, id)
	return models.PostDeleted, nil
}

func (m *PostRepository) postsOfThread(threadID int) []*models.Post {
	var posts []*models.Post
	for _, post := range m.posts {
		if post.ThreadID == threadID {
			posts = append(posts, post)
		}
	}
	sortPosts(posts)
	return posts
}
