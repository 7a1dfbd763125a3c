package repository

import (
	authdomain "feedgram/internal/auth/domain"
)

// SessionRepository owns the persisted session: one bearer token and one
// serialized user profile. In-memory copies elsewhere are caches; every
// write goes through here first.
type SessionRepository interface {
	// Load reads the persisted session. Absence or an unreadable record is
	// a normal empty session, never an error.
	Load() authdomain.Session

	// Save persists token and user together. If either write fails the
	// session is considered invalid and the error is returned.
	Save(token string, user *authdomain.User) error

	// Clear removes both entries, tolerating either already being gone.
	Clear() error

	// Token re-reads the persisted token. Implements feedapi.TokenSource;
	// returns "" when signed out.
	Token() string
}
