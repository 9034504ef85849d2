package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// FOLLOW USER COMMAND
// Adds or removes a follow edge. Both directions are idempotent:
// repeating a follow or unfollowing a stranger changes nothing.
// Following yourself is permitted.
// ══════════════════════════════════════════════════════════════════════════════

// FollowUserCommand contains the data to change a follow edge.
type FollowUserCommand struct {
	// FollowerID is the ID of the user changing their subscriptions.
	FollowerID string

	// TargetID is the ID of the user being followed or unfollowed.
	TargetID string

	// Unfollow removes the edge instead of adding it.
	Unfollow bool
}

// Validate validates the command.
func (c FollowUserCommand) Validate() error {
	if c.FollowerID == "" {
		return errors.New("follow_user: follower_id is required")
	}
	if c.TargetID == "" {
		return errors.New("follow_user: target_id is required")
	}
	return nil
}

// FollowUserResult contains the result of changing a follow edge.
type FollowUserResult struct {
	// Following is true if the edge exists after the command.
	Following bool

	// FollowingCount is the follower's subscription count after the command.
	FollowingCount int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// FollowUserHandler handles the FollowUserCommand.
type FollowUserHandler struct {
	users qa.UserRepository
}

// NewFollowUserHandler creates a new FollowUserHandler.
func NewFollowUserHandler(users qa.UserRepository) *FollowUserHandler {
	return &FollowUserHandler{users: users}
}

// Handle executes the follow user command.
func (h *FollowUserHandler) Handle(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("follow_user: validation failed: %w", err)
	}

	follower, err := h.users.GetByID(ctx, cmd.FollowerID)
	if err != nil {
		return nil, shared.WrapError("command", "FollowUser", shared.ErrNotFound, "follower not found", err)
	}

	target, err := h.users.GetByID(ctx, cmd.TargetID)
	if err != nil {
		return nil, shared.WrapError("command", "FollowUser", shared.ErrNotFound, "target not found", err)
	}

	if cmd.Unfollow {
		follower.StopFollow(target)
	} else {
		follower.Follow(target)
	}

	return &FollowUserResult{
		Following:      follower.IsFollowing(target),
		FollowingCount: len(follower.Following()),
	}, nil
}
