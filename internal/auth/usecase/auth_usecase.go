package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	authdomain "feedgram/internal/auth/domain"
	"feedgram/internal/auth/repository"
)

// ErrNoToken means the server accepted the credentials but the response
// carried no token, so no session can be established.
var ErrNoToken = errors.New("login response did not include a token")

// authUsecase implements AuthUsecase
type authUsecase struct {
	gateway  AuthGateway
	sessions repository.SessionRepository

	mu       sync.Mutex
	status   Status
	user     *authdomain.User
	onChange []func(Status)
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(gateway AuthGateway, sessions repository.SessionRepository) AuthUsecase {
	return &authUsecase{
		gateway:  gateway,
		sessions: sessions,
		status:   StatusUnknown,
	}
}

func (u *authUsecase) Restore() {
	session := u.sessions.Load()
	if session.Valid() {
		u.transition(StatusAuthenticated, session.User)
		return
	}
	u.transition(StatusAnonymous, nil)
}

func (u *authUsecase) Status() Status {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

func (u *authUsecase) CurrentUser() *authdomain.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.user
}

func (u *authUsecase) IsAuthenticated() bool {
	return u.Status() == StatusAuthenticated
}

func (u *authUsecase) SignIn(ctx context.Context, email, password string) error {
	resp, err := u.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if resp.JWT == "" || resp.User == nil {
		return ErrNoToken
	}
	// Write-through: the session is only considered established once both
	// entries are persisted.
	if err := u.sessions.Save(resp.JWT, resp.User); err != nil {
		return err
	}
	u.transition(StatusAuthenticated, resp.User)
	return nil
}

func (u *authUsecase) SignUp(ctx context.Context, name, email, password string) error {
	if _, err := u.gateway.Register(ctx, name, email, password); err != nil {
		return err
	}
	return u.SignIn(ctx, email, password)
}

func (u *authUsecase) SignOut() {
	if err := u.sessions.Clear(); err != nil {
		// Best effort: logout must never be blocked by storage failures.
		log.Printf("[WARN] failed to clear stored session: %v", err)
	}
	u.transition(StatusAnonymous, nil)
}

func (u *authUsecase) OnStatusChange(fn func(Status)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onChange = append(u.onChange, fn)
}

func (u *authUsecase) transition(status Status, user *authdomain.User) {
	u.mu.Lock()
	u.status = status
	u.user = user
	callbacks := make([]func(Status), len(u.onChange))
	copy(callbacks, u.onChange)
	u.mu.Unlock()

	for _, fn := range callbacks {
		fn(status)
	}
}
