package feedapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"posts":[],"count":0}`))
	}))
	defer srv.Close()

	ctx := context.Background()

	client := NewClient(srv.URL, staticToken("abc"))
	if _, _, err := client.GetPosts(ctx, 1, 10); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer abc" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	// No stored token: the header is simply absent, not an error.
	client = NewClient(srv.URL, staticToken(""))
	if _, _, err := client.GetPosts(ctx, 1, 10); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header without a token, got %q", gotAuth)
	}
}

func TestJSONRequestBody(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_, _ = w.Write([]byte(`{"jwt":"abc","user":{"id":1,"name":"A","email":"a@x.com"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	resp, err := client.Login(context.Background(), "a@x.com", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if !strings.Contains(gotBody, `"email":"a@x.com"`) || !strings.Contains(gotBody, `"password":"secret"`) {
		t.Fatalf("unexpected login body: %s", gotBody)
	}
	if resp.JWT != "abc" || resp.User == nil || resp.User.ID != 1 {
		t.Fatalf("unexpected login response: %+v", resp)
	}
}

func TestMultipartCreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("expected multipart content type, got %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err)
		}
		if got := r.FormValue("title"); got != "hello" {
			t.Errorf("title = %q", got)
		}
		if got := r.FormValue("content"); got != "world" {
			t.Errorf("content = %q", got)
		}
		file, header, err := r.FormFile("foto")
		if err != nil {
			t.Fatalf("missing foto part: %v", err)
		}
		defer file.Close()
		if header.Filename != "photo_1.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		if got := header.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("foto part content type = %q", got)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "png-bytes" {
			t.Errorf("file payload = %q", data)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p1","title":"hello","content":"world","photoUrl":"/uploads/x.png","userId":"1","createdAt":"now"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok"))
	post, err := client.CreatePost(context.Background(), "hello", "world", Photo{
		Name:        "photo_1.png",
		ContentType: "image/png",
		Data:        strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if post.ID != "p1" {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestLenientSuccessBodies(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"204 no content", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}},
		{"zero content length", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}},
		{"not json at all", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("definitely not json"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, nil)
			posts, count, err := client.GetPosts(context.Background(), 1, 10)
			if err != nil {
				t.Fatalf("lenient decode must not fail: %v", err)
			}
			if posts != nil || count != 0 {
				t.Fatalf("expected empty result, got %v (count %d)", posts, count)
			}
		})
	}
}

func TestErrorFromStatusWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("conflict"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Register(context.Background(), "A", "a@x.com", "secret")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("409 without JSON body should classify as duplicate email, got %v", err)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, nil)
	_, _, err := client.GetPosts(context.Background(), 1, 10)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestHealthSkipsAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("abc"))
	body, err := client.Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if body != "OK" {
		t.Fatalf("health body = %q", body)
	}
	if gotAuth != "" {
		t.Fatalf("health probe must not send the token, got %q", gotAuth)
	}
}

func TestPageQueryParameters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"count":0,"users":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	if _, _, err := client.GetUsers(context.Background(), 3, 25); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotQuery, "page=3") || !strings.Contains(gotQuery, "limit=25") {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}
