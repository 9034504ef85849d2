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
// POST ANSWER COMMAND
// Creates an answer to an existing question. Construction links the
// answer to the question and the author in one step.
// ══════════════════════════════════════════════════════════════════════════════

// PostAnswerCommand contains the data to post an answer.
type PostAnswerCommand struct {
	// AuthorID is the ID of the answering user.
	AuthorID string

	// QuestionID is the ID of the question being answered.
	QuestionID string

	// Text is the answer body.
	Text string
}

// Validate validates the command.
func (c PostAnswerCommand) Validate() error {
	if c.AuthorID == "" {
		return errors.New("post_answer: author_id is required")
	}
	if c.QuestionID == "" {
		return errors.New("post_answer: question_id is required")
	}
	if c.Text == "" {
		return errors.New("post_answer: text is required")
	}
	return nil
}

// PostAnswerResult contains the result of posting an answer.
type PostAnswerResult struct {
	// AnswerID is the ID of the created answer.
	AnswerID string

	// QuestionID is the ID of the answered question.
	QuestionID string

	// AnswerCount is the question's answer count after posting.
	AnswerCount int

	// CreatedAt is when the answer was created.
	CreatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// PostAnswerHandler handles the PostAnswerCommand.
type PostAnswerHandler struct {
	users     qa.UserRepository
	questions qa.QuestionRepository
	answers   qa.AnswerRepository
}

// NewPostAnswerHandler creates a new PostAnswerHandler.
func NewPostAnswerHandler(
	users qa.UserRepository,
	questions qa.QuestionRepository,
	answers qa.AnswerRepository,
) *PostAnswerHandler {
	return &PostAnswerHandler{
		users:     users,
		questions: questions,
		answers:   answers,
	}
}

// Handle executes the post answer command.
func (h *PostAnswerHandler) Handle(ctx context.Context, cmd PostAnswerCommand) (*PostAnswerResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("post_answer: validation failed: %w", err)
	}

	author, err := h.users.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, shared.WrapError("command", "PostAnswer", shared.ErrNotFound, "author not found", err)
	}

	question, err := h.questions.GetByID(ctx, cmd.QuestionID)
	if err != nil {
		return nil, shared.WrapError("command", "PostAnswer", shared.ErrNotFound, "question not found", err)
	}

	answer, err := qa.NewAnswer(cmd.Text, author, question)
	if err != nil {
		return nil, shared.WrapError("command", "PostAnswer", shared.ErrValidation, "failed to create answer", err)
	}

	if err := h.answers.Save(ctx, answer); err != nil {
		return nil, shared.WrapError("command", "PostAnswer", shared.ErrInvalidState, "failed to save answer", err)
	}

	return &PostAnswerResult{
		AnswerID:    answer.ID(),
		QuestionID:  question.ID(),
		AnswerCount: len(question.Answers()),
		CreatedAt:   answer.CreatedAt(),
	}, nil
}
