// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response types.
package query

import (
	"context"
	"errors"
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/feed"
	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET FEED QUERY
// Получает ленту вопросов указанного вида для пользователя.
// Лента пересчитывается при каждом запросе от текущего состояния
// графа сущностей; кэширования нет.
// ══════════════════════════════════════════════════════════════════════════════

// GetFeedQuery содержит параметры запроса ленты.
type GetFeedQuery struct {
	// Username - имя запрашивающего пользователя.
	Username string

	// Kind - вид ленты: social, topics, news или popular_today.
	Kind feed.Kind
}

// Validate проверяет корректность параметров запроса.
func (q *GetFeedQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	if !q.Kind.IsValid() {
		return errors.New("unknown feed kind: " + q.Kind.String())
	}
	return nil
}

// FeedQuestionDTO - DTO для вопроса в ленте (Data Transfer Object).
type FeedQuestionDTO struct {
	// QuestionID - идентификатор вопроса.
	QuestionID string `json:"question_id"`

	// Title - заголовок вопроса.
	Title string `json:"title"`

	// Author - имя автора.
	Author string `json:"author"`

	// PositiveVotes - число положительных голосов.
	PositiveVotes int `json:"positive_votes"`

	// NegativeVotes - число отрицательных голосов.
	NegativeVotes int `json:"negative_votes"`

	// AnswerCount - число ответов.
	AnswerCount int `json:"answer_count"`

	// Topics - названия тем вопроса.
	Topics []string `json:"topics,omitempty"`

	// CreatedAt - время создания вопроса.
	CreatedAt time.Time `json:"created_at"`
}

// GetFeedResult содержит результат запроса ленты.
type GetFeedResult struct {
	// Kind - вид запрошенной ленты.
	Kind feed.Kind `json:"kind"`

	// Username - имя запрашивающего.
	Username string `json:"username"`

	// Questions - вопросы ленты по возрастанию счёта.
	Questions []FeedQuestionDTO `json:"questions"`

	// TotalVotes - суммарное число положительных голосов в выборке.
	TotalVotes int `json:"total_votes"`

	// GeneratedAt - время генерации результата.
	GeneratedAt time.Time `json:"generated_at"`
}

// GetFeedHandler обрабатывает запросы на получение ленты.
type GetFeedHandler struct {
	users qa.UserRepository
	feeds *feed.Service
}

// NewGetFeedHandler создаёт новый обработчик запроса ленты.
func NewGetFeedHandler(users qa.UserRepository, feeds *feed.Service) *GetFeedHandler {
	return &GetFeedHandler{
		users: users,
		feeds: feeds,
	}
}

// Handle выполняет запрос на получение ленты.
func (h *GetFeedHandler) Handle(ctx context.Context, query GetFeedQuery) (*GetFeedResult, error) {
	// Валидация входных данных
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "GetFeed", shared.ErrValidation, err.Error(), err)
	}

	user, err := h.users.GetByUsername(ctx, query.Username)
	if err != nil {
		return nil, shared.WrapError("query", "GetFeed", shared.ErrNotFound, "user not found", err)
	}

	questions, err := h.feeds.For(query.Kind, user)
	if err != nil {
		return nil, shared.WrapError("query", "GetFeed", shared.ErrInvalidInput, "failed to build feed", err)
	}

	return h.buildResult(query, questions), nil
}

// buildResult собирает DTO-результат из вопросов ленты.
func (h *GetFeedHandler) buildResult(query GetFeedQuery, questions []*qa.Question) *GetFeedResult {
	dtos := make([]FeedQuestionDTO, 0, len(questions))
	totalVotes := 0

	for _, q := range questions {
		topics := q.Topics()
		topicNames := make([]string, 0, len(topics))
		for _, t := range topics {
			topicNames = append(topicNames, t.Name())
		}

		positive := len(q.PositiveVotes())
		totalVotes += positive

		dtos = append(dtos, FeedQuestionDTO{
			QuestionID:    q.ID(),
			Title:         q.Title(),
			Author:        q.Author().Username(),
			PositiveVotes: positive,
			NegativeVotes: len(q.NegativeVotes()),
			AnswerCount:   len(q.Answers()),
			Topics:        topicNames,
			CreatedAt:     q.CreatedAt(),
		})
	}

	return &GetFeedResult{
		Kind:        query.Kind,
		Username:    query.Username,
		Questions:   dtos,
		TotalVotes:  totalVotes,
		GeneratedAt: time.Now().UTC(),
	}
}
