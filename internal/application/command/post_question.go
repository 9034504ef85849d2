package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/feed"
	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// POST QUESTION COMMAND
// Creates a question, attaches its initial topics and publishes it
// into the feed pool. A duplicate topic in the initial set rejects
// the whole command with no partial registration.
// ══════════════════════════════════════════════════════════════════════════════

// PostQuestionCommand contains the data to post a question.
type PostQuestionCommand struct {
	// AuthorID is the ID of the asking user.
	AuthorID string

	// Title is the question title.
	Title string

	// Description is the question body.
	Description string

	// TopicIDs are the initial topics, attached in order.
	TopicIDs []string
}

// Validate validates the command.
func (c PostQuestionCommand) Validate() error {
	if c.AuthorID == "" {
		return errors.New("post_question: author_id is required")
	}
	if c.Title == "" {
		return errors.New("post_question: title is required")
	}
	return nil
}

// PostQuestionResult contains the result of posting a question.
type PostQuestionResult struct {
	// QuestionID is the ID of the created question.
	QuestionID string

	// Title is the title of the created question.
	Title string

	// TopicCount is the number of attached topics.
	TopicCount int

	// CreatedAt is when the question was created.
	CreatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// PostQuestionHandler handles the PostQuestionCommand.
type PostQuestionHandler struct {
	users     qa.UserRepository
	topics    qa.TopicRepository
	questions qa.QuestionRepository
	feeds     *feed.Service
}

// NewPostQuestionHandler creates a new PostQuestionHandler.
func NewPostQuestionHandler(
	users qa.UserRepository,
	topics qa.TopicRepository,
	questions qa.QuestionRepository,
	feeds *feed.Service,
) *PostQuestionHandler {
	return &PostQuestionHandler{
		users:     users,
		topics:    topics,
		questions: questions,
		feeds:     feeds,
	}
}

// Handle executes the post question command.
func (h *PostQuestionHandler) Handle(ctx context.Context, cmd PostQuestionCommand) (*PostQuestionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("post_question: validation failed: %w", err)
	}

	author, err := h.users.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, shared.WrapError("command", "PostQuestion", shared.ErrNotFound, "author not found", err)
	}

	initialTopics := make([]*qa.Topic, 0, len(cmd.TopicIDs))
	for _, topicID := range cmd.TopicIDs {
		topic, err := h.topics.GetByID(ctx, topicID)
		if err != nil {
			return nil, shared.WrapError("command", "PostQuestion", shared.ErrNotFound, "topic not found", err)
		}
		initialTopics = append(initialTopics, topic)
	}

	params := qa.NewQuestionParams(cmd.Title, cmd.Description, author)
	params.Topics = initialTopics

	question, err := qa.NewQuestion(params)
	if err != nil {
		return nil, shared.WrapError("command", "PostQuestion", shared.ErrValidation, "failed to create question", err)
	}

	if err := h.questions.Save(ctx, question); err != nil {
		return nil, shared.WrapError("command", "PostQuestion", shared.ErrInvalidState, "failed to save question", err)
	}

	if h.feeds != nil {
		h.feeds.AddQuestion(question)
	}

	return &PostQuestionResult{
		QuestionID: question.ID(),
		Title:      question.Title(),
		TopicCount: len(question.Topics()),
		CreatedAt:  question.CreatedAt(),
	}, nil
}
