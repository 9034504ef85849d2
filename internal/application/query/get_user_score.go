package query

import (
	"context"
	"errors"
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET USER SCORE QUERY
// Считает репутацию пользователя: баллы начисляются за каждый вопрос
// и ответ, у которого положительных голосов строго больше, чем
// отрицательных. Счёт пересчитывается при каждом запросе.
// ══════════════════════════════════════════════════════════════════════════════

// GetUserScoreQuery содержит параметры запроса репутации.
type GetUserScoreQuery struct {
	// Username - имя пользователя.
	Username string

	// QuestionPoints - баллы за вопрос. Ноль означает значение
	// по умолчанию.
	QuestionPoints int

	// AnswerPoints - баллы за ответ. Ноль означает значение
	// по умолчанию.
	AnswerPoints int
}

// Validate проверяет корректность параметров запроса.
func (q *GetUserScoreQuery) Validate() error {
	if q.Username == "" {
		return errors.New("username is required")
	}
	if q.QuestionPoints < 0 || q.AnswerPoints < 0 {
		return errors.New("points cannot be negative")
	}
	if q.QuestionPoints == 0 {
		q.QuestionPoints = qa.DefaultQuestionPoints
	}
	if q.AnswerPoints == 0 {
		q.AnswerPoints = qa.DefaultAnswerPoints
	}
	return nil
}

// GetUserScoreResult содержит результат запроса репутации.
type GetUserScoreResult struct {
	// Username - имя пользователя.
	Username string `json:"username"`

	// Score - итоговая репутация.
	Score int `json:"score"`

	// QuestionCount - общее число вопросов пользователя.
	QuestionCount int `json:"question_count"`

	// AnswerCount - общее число ответов пользователя.
	AnswerCount int `json:"answer_count"`

	// ScoringQuestions - число вопросов, принёсших баллы.
	ScoringQuestions int `json:"scoring_questions"`

	// ScoringAnswers - число ответов, принёсших баллы.
	ScoringAnswers int `json:"scoring_answers"`

	// GeneratedAt - время генерации результата.
	GeneratedAt time.Time `json:"generated_at"`
}

// GetUserScoreHandler обрабатывает запросы репутации.
type GetUserScoreHandler struct {
	users qa.UserRepository
}

// NewGetUserScoreHandler создаёт новый обработчик запроса репутации.
func NewGetUserScoreHandler(users qa.UserRepository) *GetUserScoreHandler {
	return &GetUserScoreHandler{users: users}
}

// Handle выполняет запрос репутации.
func (h *GetUserScoreHandler) Handle(ctx context.Context, query GetUserScoreQuery) (*GetUserScoreResult, error) {
	// Валидация входных данных
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "GetUserScore", shared.ErrValidation, err.Error(), err)
	}

	user, err := h.users.GetByUsername(ctx, query.Username)
	if err != nil {
		return nil, shared.WrapError("query", "GetUserScore", shared.ErrNotFound, "user not found", err)
	}

	scoringQuestions := 0
	for _, q := range user.Questions() {
		if len(q.PositiveVotes()) > len(q.NegativeVotes()) {
			scoringQuestions++
		}
	}

	scoringAnswers := 0
	for _, a := range user.Answers() {
		if len(a.PositiveVotes()) > len(a.NegativeVotes()) {
			scoringAnswers++
		}
	}

	return &GetUserScoreResult{
		Username:         user.Username(),
		Score:            user.ScoreWith(query.QuestionPoints, query.AnswerPoints),
		QuestionCount:    len(user.Questions()),
		AnswerCount:      len(user.Answers()),
		ScoringQuestions: scoringQuestions,
		ScoringAnswers:   scoringAnswers,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}
