package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	authdomain "feedgram/internal/auth/domain"
)

const (
	tokenFile = "jwt_token"
	userFile  = "user_data.json"
)

// fileSessionRepository persists the session as two small files under a
// data directory, the on-device equivalent of the mobile app's key-value
// storage.
type fileSessionRepository struct {
	dir string
}

// NewFileSessionRepository creates a file-backed session store rooted at dir.
func NewFileSessionRepository(dir string) SessionRepository {
	return &fileSessionRepository{dir: dir}
}

func (r *fileSessionRepository) Load() authdomain.Session {
	token, err := r.readToken()
	if err != nil {
		return authdomain.Session{}
	}

	data, err := os.ReadFile(filepath.Join(r.dir, userFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[WARN] failed to read stored user: %v", err)
		}
		return authdomain.Session{}
	}
	var user authdomain.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("[WARN] stored user is not valid JSON, treating as no session: %v", err)
		return authdomain.Session{}
	}

	if token == "" {
		return authdomain.Session{}
	}
	return authdomain.Session{Token: token, User: &user}
}

func (r *fileSessionRepository) Save(token string, user *authdomain.User) error {
	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, tokenFile), []byte(token), 0600); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, userFile), data, 0600); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

func (r *fileSessionRepository) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFile, userFile} {
		err := os.Remove(filepath.Join(r.dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *fileSessionRepository) Token() string {
	token, err := r.readToken()
	if err != nil {
		return ""
	}
	return token
}

func (r *fileSessionRepository) readToken() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, tokenFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		log.Printf("[WARN] failed to read stored token: %v", err)
		return "", err
	}
	return string(data), nil
}
