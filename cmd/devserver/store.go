package main

import (
	"sort"
	"strconv"
	"sync"
	"time"

	feeddomain "feedgram/internal/feed/domain"
)

// memoryStore holds the fixture's state. Everything lives in memory on
// purpose: the dev server exists to exercise the client, not to keep data.
type memoryStore struct {
	mu       sync.Mutex
	nextID   int64
	accounts []*account
	posts    []feeddomain.Post
}

type account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 1}
}

func (s *memoryStore) createAccount(name, email, hash string) (*account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Email == email {
			return nil, false
		}
	}
	acc := &account{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextID++
	s.accounts = append(s.accounts, acc)
	return acc, true
}

func (s *memoryStore) findByEmail(email string) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Email == email {
			return acc
		}
	}
	return nil
}

func (s *memoryStore) findByID(id int64) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}

func (s *memoryStore) listAccounts(page, limit int) ([]*account, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return paginate(s.accounts, page, limit), len(s.accounts)
}

func (s *memoryStore) addPost(post feeddomain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
}

func (s *memoryStore) listPosts(page, limit int) ([]feeddomain.Post, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest first, the order the feed expects.
	ordered := make([]feeddomain.Post, len(s.posts))
	copy(ordered, s.posts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt > ordered[j].CreatedAt
	})
	return paginate(ordered, page, limit), len(ordered)
}

func (s *memoryStore) postsByUser(userID int64) []feeddomain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := strconv.FormatInt(userID, 10)
	mine := []feeddomain.Post{}
	for _, post := range s.posts {
		if post.UserID == owner {
			mine = append(mine, post)
		}
	}
	return mine
}

func (s *memoryStore) findPost(id string) (feeddomain.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.posts {
		if post.ID == id {
			return post, true
		}
	}
	return feeddomain.Post{}, false
}

func (s *memoryStore) deletePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posts[:0]
	for _, post := range s.posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	s.posts = kept
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
