package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CAST VOTE COMMAND
// Casts a vote on a question or an answer, addressed uniformly by
// target ID. A second vote by the same user on the same target is
// rejected and leaves the first vote untouched.
// ══════════════════════════════════════════════════════════════════════════════

// CastVoteCommand contains the data to cast a vote.
type CastVoteCommand struct {
	// VoterID is the ID of the voting user.
	VoterID string

	// TargetID is the ID of the question or answer being voted on.
	TargetID string

	// Positive is the vote polarity: true for like, false for dislike.
	Positive bool
}

// Validate validates the command.
func (c CastVoteCommand) Validate() error {
	if c.VoterID == "" {
		return errors.New("cast_vote: voter_id is required")
	}
	if c.TargetID == "" {
		return errors.New("cast_vote: target_id is required")
	}
	return nil
}

// CastVoteResult contains the result of casting a vote.
type CastVoteResult struct {
	// VoteID is the ID of the created vote.
	VoteID string

	// Positive is the polarity of the created vote.
	Positive bool

	// PositiveCount is the target's positive vote count after the cast.
	PositiveCount int

	// NegativeCount is the target's negative vote count after the cast.
	NegativeCount int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// CastVoteHandler handles the CastVoteCommand.
type CastVoteHandler struct {
	users    qa.UserRepository
	votables qa.VotableRepository
}

// NewCastVoteHandler creates a new CastVoteHandler.
func NewCastVoteHandler(users qa.UserRepository, votables qa.VotableRepository) *CastVoteHandler {
	return &CastVoteHandler{
		users:    users,
		votables: votables,
	}
}

// Handle executes the cast vote command.
func (h *CastVoteHandler) Handle(ctx context.Context, cmd CastVoteCommand) (*CastVoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("cast_vote: validation failed: %w", err)
	}

	voter, err := h.users.GetByID(ctx, cmd.VoterID)
	if err != nil {
		return nil, shared.WrapError("command", "CastVote", shared.ErrNotFound, "voter not found", err)
	}

	target, err := h.votables.GetVotable(ctx, cmd.TargetID)
	if err != nil {
		return nil, shared.WrapError("command", "CastVote", shared.ErrNotFound, "vote target not found", err)
	}

	var vote *qa.Vote
	if cmd.Positive {
		vote, err = qa.NewVote(voter)
	} else {
		vote, err = qa.NewDownvote(voter)
	}
	if err != nil {
		return nil, shared.WrapError("command", "CastVote", shared.ErrValidation, "failed to create vote", err)
	}

	if err := target.AddVote(vote); err != nil {
		return nil, shared.WrapError("command", "CastVote", shared.ErrAlreadyExists, "failed to add vote", err)
	}

	return &CastVoteResult{
		VoteID:        vote.ID(),
		Positive:      vote.IsLike(),
		PositiveCount: len(target.PositiveVotes()),
		NegativeCount: len(target.NegativeVotes()),
	}, nil
}
