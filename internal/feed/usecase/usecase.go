package usecase

import (
	"context"

	authdomain "feedgram/internal/auth/domain"
	feeddomain "feedgram/internal/feed/domain"
	"feedgram/pkg/feedapi"
)

// ListStatus is a list controller's fetch state. Refreshing and LoadingMore
// are UI distinctions; the replace/append semantics are fixed per operation.
type ListStatus int

const (
	StatusIdle ListStatus = iota
	StatusLoading
	StatusRefreshing
	StatusLoadingMore
)

// PostGateway is the slice of the API client the post controllers need.
type PostGateway interface {
	GetPosts(ctx context.Context, page, limit int) ([]feeddomain.Post, int, error)
	GetMyPosts(ctx context.Context) ([]feeddomain.Post, error)
	CreatePost(ctx context.Context, title, content string, photo feedapi.Photo) (*feeddomain.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// UserGateway is the slice of the API client the user directory needs.
type UserGateway interface {
	GetUsers(ctx context.Context, page, limit int) ([]authdomain.User, int, error)
	GetUserByID(ctx context.Context, id string) (*authdomain.User, error)
}

// CurrentUserFunc returns the signed-in user, or nil when anonymous. Read
// at call time so the ownership check always sees the live session.
type CurrentUserFunc func() *authdomain.User
