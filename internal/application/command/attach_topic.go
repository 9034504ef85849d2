package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTACH TOPIC COMMAND
// Attaches a topic either to a question (a tagging edge, duplicate
// rejected) or to a user's interests (silently idempotent). Exactly
// one of QuestionID and UserID must be set.
// ══════════════════════════════════════════════════════════════════════════════

// AttachTopicCommand contains the data to attach a topic.
type AttachTopicCommand struct {
	// TopicID is the ID of the topic to attach.
	TopicID string

	// QuestionID tags a question with the topic.
	QuestionID string

	// UserID adds the topic to a user's interests.
	UserID string
}

// Validate validates the command.
func (c AttachTopicCommand) Validate() error {
	if c.TopicID == "" {
		return errors.New("attach_topic: topic_id is required")
	}
	if c.QuestionID == "" && c.UserID == "" {
		return errors.New("attach_topic: question_id or user_id is required")
	}
	if c.QuestionID != "" && c.UserID != "" {
		return errors.New("attach_topic: question_id and user_id are mutually exclusive")
	}
	return nil
}

// AttachTopicResult contains the result of attaching a topic.
type AttachTopicResult struct {
	// TopicName is the name of the attached topic.
	TopicName string

	// TopicCount is the target's topic count after attaching:
	// question topics or user interests, depending on the target.
	TopicCount int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AttachTopicHandler handles the AttachTopicCommand.
type AttachTopicHandler struct {
	users     qa.UserRepository
	topics    qa.TopicRepository
	questions qa.QuestionRepository
}

// NewAttachTopicHandler creates a new AttachTopicHandler.
func NewAttachTopicHandler(
	users qa.UserRepository,
	topics qa.TopicRepository,
	questions qa.QuestionRepository,
) *AttachTopicHandler {
	return &AttachTopicHandler{
		users:     users,
		topics:    topics,
		questions: questions,
	}
}

// Handle executes the attach topic command.
func (h *AttachTopicHandler) Handle(ctx context.Context, cmd AttachTopicCommand) (*AttachTopicResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("attach_topic: validation failed: %w", err)
	}

	topic, err := h.topics.GetByID(ctx, cmd.TopicID)
	if err != nil {
		return nil, shared.WrapError("command", "AttachTopic", shared.ErrNotFound, "topic not found", err)
	}

	if cmd.QuestionID != "" {
		question, err := h.questions.GetByID(ctx, cmd.QuestionID)
		if err != nil {
			return nil, shared.WrapError("command", "AttachTopic", shared.ErrNotFound, "question not found", err)
		}
		if err := question.AddTopic(topic); err != nil {
			return nil, shared.WrapError("command", "AttachTopic", shared.ErrAlreadyExists, "failed to attach topic", err)
		}
		return &AttachTopicResult{
			TopicName:  topic.Name(),
			TopicCount: len(question.Topics()),
		}, nil
	}

	user, err := h.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, shared.WrapError("command", "AttachTopic", shared.ErrNotFound, "user not found", err)
	}
	user.AddInterest(topic)

	return &AttachTopicResult{
		TopicName:  topic.Name(),
		TopicCount: len(user.Interests()),
	}, nil
}
