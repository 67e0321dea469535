package client

import (
	"context"
	"time"
)

// Account is the client-side view of a user returned by the server.
// The server never discloses password hashes.
type Account struct {
	ID       string
	FullName string
	Email    string
	Role     string
}

// ResetCodeInfo describes how a password reset code was delivered. When the
// server falls back to the mock channel, Code carries the code itself.
type ResetCodeInfo struct {
	Channel   string
	Code      string
	ExpiresAt time.Time
}

// Service is the RPC surface the CLI works against. GRPCClient is the real
// implementation; tests substitute a stub.
type Service interface {
	Register(ctx context.Context, fullName, email, password string) (*Account, error)
	Login(ctx context.Context, email, password string) (*Account, error)
	SendResetCode(ctx context.Context, email string) (*ResetCodeInfo, error)
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	Me(ctx context.Context) (*Account, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	IsLoggedIn() bool
	Close() error
}
