package usecase

import (
	"context"
	"errors"
	"strconv"

	feeddomain "feedgram/internal/feed/domain"
)

// ErrNotPostOwner is raised before any network call when the signed-in user
// does not own the post they are trying to delete. The server enforces
// ownership too; this just avoids offering an action that will fail.
var ErrNotPostOwner = errors.New("you can only delete your own posts")

// PostFeed is the paginated public feed plus the delete flow.
type PostFeed struct {
	*pager[feeddomain.Post]
	gateway     PostGateway
	currentUser CurrentUserFunc
}

func NewPostFeed(gateway PostGateway, currentUser CurrentUserFunc, pageSize int) *PostFeed {
	return &PostFeed{
		pager:       newPager(gateway.GetPosts, pageSize),
		gateway:     gateway,
		currentUser: currentUser,
	}
}

// Owns reports whether the signed-in user is the post's owner. The wire
// sends the owner as a string and the user ID as a number, hence the
// conversion.
func (f *PostFeed) Owns(post feeddomain.Post) bool {
	user := f.currentUser()
	if user == nil || user.ID == 0 {
		return false
	}
	ownerID, err := strconv.ParseInt(post.UserID, 10, 64)
	if err != nil {
		return false
	}
	return ownerID == user.ID
}

// DeletePost deletes after the ownership precheck. The local window is only
// updated once the server acknowledges; a failure leaves the list unchanged
// and surfaces the error to the caller.
func (f *PostFeed) DeletePost(ctx context.Context, post feeddomain.Post) error {
	if !f.Owns(post) {
		return ErrNotPostOwner
	}
	if err := f.gateway.DeletePost(ctx, post.ID); err != nil {
		return err
	}
	f.remove(func(p feeddomain.Post) bool { return p.ID == post.ID })
	return nil
}
