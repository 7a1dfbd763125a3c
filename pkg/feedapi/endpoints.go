package feedapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	authdomain "feedgram/internal/auth/domain"
	feeddomain "feedgram/internal/feed/domain"
)

// AuthResponse is the /login success shape. The token field is named jwt on
// the wire.
type AuthResponse struct {
	JWT  string           `json:"jwt"`
	User *authdomain.User `json:"user"`
}

// RegisterResponse is the /users success shape. Registration does not yield
// a session; callers sign in afterwards.
type RegisterResponse struct {
	Message string           `json:"message,omitempty"`
	User    *authdomain.User `json:"user,omitempty"`
}

// Photo is the binary payload for a new post.
type Photo struct {
	Name        string
	ContentType string
	Data        io.Reader
}

func pageQuery(page, limit int) url.Values {
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisterResponse, error) {
	var resp RegisterResponse
	err := c.do(ctx, http.MethodPost, "/users", nil, jsonBody{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, jsonBody{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetUsers(ctx context.Context, page, limit int) ([]authdomain.User, int, error) {
	var resp struct {
		Count int               `json:"count"`
		Users []authdomain.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", pageQuery(page, limit), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Users, resp.Count, nil
}

func (c *Client) GetUserByID(ctx context.Context, id string) (*authdomain.User, error) {
	var user authdomain.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetPosts(ctx context.Context, page, limit int) ([]feeddomain.Post, int, error) {
	var resp struct {
		Posts []feeddomain.Post `json:"posts"`
		Count int               `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/posts", pageQuery(page, limit), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Posts, resp.Count, nil
}

// GetMyPosts returns the signed-in user's posts. Requires a stored token;
// without one the server answers 401 and the error comes back classified.
func (c *Client) GetMyPosts(ctx context.Context) ([]feeddomain.Post, error) {
	var posts []feeddomain.Post
	if err := c.do(ctx, http.MethodGet, "/my-posts", nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost uploads a new post as multipart form data. The binary part's
// field name is foto, fixed by the server's contract.
func (c *Client) CreatePost(ctx context.Context, title, content string, photo Photo) (*feeddomain.Post, error) {
	var post feeddomain.Post
	body := &multipartBody{
		fields:    map[string]string{"title": title, "content": content},
		fileField: "foto",
		fileName:  photo.Name,
		fileType:  photo.ContentType,
		file:      photo.Data,
	}
	if err := c.do(ctx, http.MethodPost, "/posts", nil, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil, nil)
}

// Health probes /healthcheck and returns the raw body. This bypasses the
// shared request path: no token, no JSON handling, mirroring the upstream
// client's bare probe.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthcheck", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
