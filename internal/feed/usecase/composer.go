package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	feeddomain "feedgram/internal/feed/domain"
	"feedgram/pkg/feedapi"
)

// Client-side validation errors for a new post, checked in this order
// before any network call is made.
var (
	ErrTitleRequired   = errors.New("please provide a title")
	ErrContentRequired = errors.New("please provide the content")
	ErrPhotoRequired   = errors.New("please select an image")
)

// Composer creates posts: validates the input locally, derives the upload
// file name, and submits the multipart request.
type Composer struct {
	gateway PostGateway
}

func NewComposer(gateway PostGateway) *Composer {
	return &Composer{gateway: gateway}
}

func (c *Composer) Submit(ctx context.Context, title, content, photoPath string) (*feeddomain.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	if photoPath == "" {
		return nil, ErrPhotoRequired
	}

	file, err := os.Open(photoPath)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	ext := photoExt(photoPath)
	photo := feedapi.Photo{
		Name:        fmt.Sprintf("photo_%d.%s", time.Now().UnixMilli(), ext),
		ContentType: "image/" + ext,
		Data:        file,
	}
	return c.gateway.CreatePost(ctx, title, content, photo)
}

func photoExt(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "jpg"
	}
	return strings.ToLower(ext)
}
