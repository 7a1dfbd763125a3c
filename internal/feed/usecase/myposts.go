package usecase

import (
	"context"
	"sync"

	feeddomain "feedgram/internal/feed/domain"
)

// MyPosts is the signed-in user's own posts. The endpoint is not paginated;
// every load replaces the list wholesale.
type MyPosts struct {
	gateway PostGateway

	mu      sync.Mutex
	items   []feeddomain.Post
	status  ListStatus
	lastErr error
}

func NewMyPosts(gateway PostGateway) *MyPosts {
	return &MyPosts{gateway: gateway}
}

func (m *MyPosts) Load(ctx context.Context) error {
	return m.load(ctx, StatusLoading)
}

func (m *MyPosts) Refresh(ctx context.Context) error {
	return m.load(ctx, StatusRefreshing)
}

func (m *MyPosts) load(ctx context.Context, status ListStatus) error {
	m.mu.Lock()
	if m.status != StatusIdle {
		m.mu.Unlock()
		return nil
	}
	m.status = status
	m.mu.Unlock()

	posts, err := m.gateway.GetMyPosts(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusIdle
	if err != nil {
		m.lastErr = err
		return err
	}
	m.lastErr = nil
	m.items = posts
	return nil
}

// Delete removes one of the user's own posts, updating the local list only
// after the server acknowledges.
func (m *MyPosts) Delete(ctx context.Context, id string) error {
	if err := m.gateway.DeletePost(ctx, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, post := range m.items {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	m.items = kept
	return nil
}

func (m *MyPosts) Items() []feeddomain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items
}

func (m *MyPosts) Status() ListStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *MyPosts) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
