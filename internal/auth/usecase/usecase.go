package usecase

import (
	"context"

	authdomain "feedgram/internal/auth/domain"
	"feedgram/pkg/feedapi"
)

// Status is the controller's authentication state. It starts at
// StatusUnknown until the stored session has been restored, so consumers
// can show a loading state instead of flashing the wrong screen.
type Status int

const (
	StatusUnknown Status = iota
	StatusAnonymous
	StatusAuthenticated
)

// AuthGateway is the slice of the API client the auth controller needs.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*feedapi.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*feedapi.RegisterResponse, error)
}

// AuthUsecase orchestrates sign-in, sign-up and sign-out against the API
// and the session store, and exposes the derived authentication state.
type AuthUsecase interface {
	// Restore loads the persisted session and settles the status. Must be
	// called once at startup before the status is trusted.
	Restore()

	Status() Status
	CurrentUser() *authdomain.User
	IsAuthenticated() bool

	// SignIn authenticates and persists the session write-through. On
	// failure the state is unchanged and the error propagates unmodified.
	SignIn(ctx context.Context, email, password string) error

	// SignUp registers and then signs in with the same credentials;
	// registration alone does not yield a session. A registration failure
	// skips the sign-in attempt.
	SignUp(ctx context.Context, name, email, password string) error

	// SignOut clears the stored session and becomes anonymous
	// unconditionally; storage errors are logged, never returned.
	SignOut()

	// OnStatusChange registers a callback invoked after every transition.
	OnStatusChange(fn func(Status))
}
