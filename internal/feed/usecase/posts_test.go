package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	authdomain "feedgram/internal/auth/domain"
	feeddomain "feedgram/internal/feed/domain"
	"feedgram/pkg/feedapi"
)

type fakePostGateway struct {
	posts       []feeddomain.Post
	myPosts     []feeddomain.Post
	deleteErr   error
	deleteCalls int
	deletedIDs  []string

	createdPhoto feedapi.Photo
	createdData  string
}

func (g *fakePostGateway) GetPosts(ctx context.Context, page, limit int) ([]feeddomain.Post, int, error) {
	return g.posts, len(g.posts), nil
}

func (g *fakePostGateway) GetMyPosts(ctx context.Context) ([]feeddomain.Post, error) {
	return g.myPosts, nil
}

func (g *fakePostGateway) CreatePost(ctx context.Context, title, content string, photo feedapi.Photo) (*feeddomain.Post, error) {
	g.createdPhoto = photo
	data, err := io.ReadAll(photo.Data)
	if err != nil {
		return nil, err
	}
	g.createdData = string(data)
	return &feeddomain.Post{ID: "new", Title: title, Content: content}, nil
}

func (g *fakePostGateway) DeletePost(ctx context.Context, id string) error {
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deletedIDs = append(g.deletedIDs, id)
	return nil
}

func userFunc(user *authdomain.User) CurrentUserFunc {
	return func() *authdomain.User { return user }
}

func TestDeleteRefusedForForeignPost(t *testing.T) {
	gateway := &fakePostGateway{posts: []feeddomain.Post{{ID: "p1", UserID: "2"}}}
	feed := NewPostFeed(gateway, userFunc(&authdomain.User{ID: 1}), 10)
	if err := feed.LoadFirstPage(context.Background()); err != nil {
		t.Fatal(err)
	}

	err := feed.DeletePost(context.Background(), feed.Items()[0])
	if !errors.Is(err, ErrNotPostOwner) {
		t.Fatalf("expected ownership refusal, got %v", err)
	}
	if gateway.deleteCalls != 0 {
		t.Fatal("ownership must be checked before any network call")
	}
}

func TestDeleteRemovesAfterAcknowledgement(t *testing.T) {
	gateway := &fakePostGateway{posts: []feeddomain.Post{
		{ID: "p1", UserID: "1"},
		{ID: "p2", UserID: "1"},
	}}
	feed := NewPostFeed(gateway, userFunc(&authdomain.User{ID: 1}), 10)
	if err := feed.LoadFirstPage(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := feed.DeletePost(context.Background(), feed.Items()[0]); err != nil {
		t.Fatal(err)
	}
	items := feed.Items()
	if len(items) != 1 || items[0].ID != "p2" {
		t.Fatalf("expected only p2 left, got %v", items)
	}
	if len(gateway.deletedIDs) != 1 || gateway.deletedIDs[0] != "p1" {
		t.Fatalf("server delete ids = %v", gateway.deletedIDs)
	}
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	gateway := &fakePostGateway{
		posts:     []feeddomain.Post{{ID: "p1", UserID: "1"}},
		deleteErr: feedapi.ErrServer,
	}
	feed := NewPostFeed(gateway, userFunc(&authdomain.User{ID: 1}), 10)
	if err := feed.LoadFirstPage(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := feed.DeletePost(context.Background(), feed.Items()[0]); !errors.Is(err, feedapi.ErrServer) {
		t.Fatalf("expected server error, got %v", err)
	}
	if len(feed.Items()) != 1 {
		t.Fatal("failed delete must leave the list unchanged")
	}
}

func TestOwns(t *testing.T) {
	feedOwned := NewPostFeed(&fakePostGateway{}, userFunc(&authdomain.User{ID: 12}), 10)
	if !feedOwned.Owns(feeddomain.Post{UserID: "12"}) {
		t.Fatal("matching numeric IDs should be owned")
	}
	if feedOwned.Owns(feeddomain.Post{UserID: "13"}) {
		t.Fatal("mismatched IDs should not be owned")
	}
	if feedOwned.Owns(feeddomain.Post{UserID: "not-a-number"}) {
		t.Fatal("unparsable owner must never match")
	}

	anonymous := NewPostFeed(&fakePostGateway{}, userFunc(nil), 10)
	if anonymous.Owns(feeddomain.Post{UserID: "12"}) {
		t.Fatal("anonymous users own nothing")
	}
}
