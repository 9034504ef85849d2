// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER USER COMMAND
// Creates a new user account. The password is hashed at construction
// and never stored in clear text.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterUserCommand contains the data to register a user.
type RegisterUserCommand struct {
	// Username is the login name. Must be unique.
	Username string

	// Password is the clear-text password to hash and store.
	Password string
}

// Validate validates the command.
func (c RegisterUserCommand) Validate() error {
	if c.Username == "" {
		return errors.New("register_user: username is required")
	}
	if c.Password == "" {
		return errors.New("register_user: password is required")
	}
	return nil
}

// RegisterUserResult contains the result of registering a user.
type RegisterUserResult struct {
	// UserID is the ID of the created user.
	UserID string

	// Username is the login name of the created user.
	Username string

	// CreatedAt is when the user was registered.
	CreatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RegisterUserHandler handles the RegisterUserCommand.
type RegisterUserHandler struct {
	users qa.UserRepository
}

// NewRegisterUserHandler creates a new RegisterUserHandler.
func NewRegisterUserHandler(users qa.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{users: users}
}

// Handle executes the register user command.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("register_user: validation failed: %w", err)
	}

	// Username must be free
	if _, err := h.users.GetByUsername(ctx, cmd.Username); err == nil {
		return nil, shared.NewDomainError("command", "RegisterUser", shared.ErrUserExists,
			"username "+cmd.Username+" is already taken")
	} else if !shared.IsNotFound(err) {
		return nil, shared.WrapError("command", "RegisterUser", shared.ErrInvalidState, "failed to check username", err)
	}

	user, err := qa.NewUser(cmd.Username, cmd.Password)
	if err != nil {
		return nil, shared.WrapError("command", "RegisterUser", shared.ErrValidation, "failed to create user", err)
	}

	if err := h.users.Save(ctx, user); err != nil {
		return nil, shared.WrapError("command", "RegisterUser", shared.ErrInvalidState, "failed to save user", err)
	}

	return &RegisterUserResult{
		UserID:    user.ID(),
		Username:  user.Username(),
		CreatedAt: user.CreatedAt(),
	}, nil
}
