package store

import (
	"context"

	"github.com/phrazzld/almanac-api/internal/domain"
)

// AccountStore defines the interface for account registry operations.
type AccountStore interface {
	// CreateAccount saves a new account to the registry.
	// Returns ErrUsernameExists if the username is already taken by any
	// account, active or deactivated.
	// Returns validation errors from the domain Account if data is invalid.
	CreateAccount(ctx context.Context, account *domain.Account) error

	// GetAccount retrieves an account by username, regardless of whether
	// it is active. Returns ErrAccountNotFound if no account has that
	// username.
	GetAccount(ctx context.Context, username string) (*domain.Account, error)

	// UsernameExists reports whether any account, active or deactivated,
	// holds the given username. Deactivated usernames stay reserved.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// FindByCredentials returns the first account, in registration
	// order, that authenticates with the given credentials. Returns
	// ErrAccountNotFound when no active account matches; the caller
	// cannot distinguish a wrong password from an unknown or
	// deactivated username.
	FindByCredentials(ctx context.Context, username, password string) (*domain.Account, error)

	// ListAccounts returns all accounts in registration order,
	// including deactivated ones.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}
