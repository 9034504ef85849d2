package query

import (
	"context"
	"errors"
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET BEST ANSWER QUERY
// Находит лучший ответ вопроса: максимальный чистый счёт
// (положительные минус отрицательные голоса), при равенстве
// побеждает более ранний ответ. Результат не запоминается:
// следующий голос может сменить лидера.
// ══════════════════════════════════════════════════════════════════════════════

// GetBestAnswerQuery содержит параметры запроса лучшего ответа.
type GetBestAnswerQuery struct {
	// QuestionID - идентификатор вопроса.
	QuestionID string
}

// Validate проверяет корректность параметров запроса.
func (q *GetBestAnswerQuery) Validate() error {
	if q.QuestionID == "" {
		return errors.New("question_id is required")
	}
	return nil
}

// BestAnswerDTO - DTO для лучшего ответа.
type BestAnswerDTO struct {
	// AnswerID - идентификатор ответа.
	AnswerID string `json:"answer_id"`

	// Text - текст ответа.
	Text string `json:"text"`

	// Author - имя автора ответа.
	Author string `json:"author"`

	// NetScore - чистый счёт ответа.
	NetScore int `json:"net_score"`

	// PositiveVotes - число положительных голосов.
	PositiveVotes int `json:"positive_votes"`

	// NegativeVotes - число отрицательных голосов.
	NegativeVotes int `json:"negative_votes"`
}

// GetBestAnswerResult содержит результат запроса лучшего ответа.
type GetBestAnswerResult struct {
	// QuestionID - идентификатор вопроса.
	QuestionID string `json:"question_id"`

	// HasAnswers - есть ли у вопроса ответы вообще.
	HasAnswers bool `json:"has_answers"`

	// Best - лучший ответ; nil, если ответов нет.
	Best *BestAnswerDTO `json:"best,omitempty"`

	// AnswerCount - общее число ответов вопроса.
	AnswerCount int `json:"answer_count"`

	// GeneratedAt - время генерации результата.
	GeneratedAt time.Time `json:"generated_at"`
}

// GetBestAnswerHandler обрабатывает запросы лучшего ответа.
type GetBestAnswerHandler struct {
	questions qa.QuestionRepository
}

// NewGetBestAnswerHandler создаёт новый обработчик запроса лучшего ответа.
func NewGetBestAnswerHandler(questions qa.QuestionRepository) *GetBestAnswerHandler {
	return &GetBestAnswerHandler{questions: questions}
}

// Handle выполняет запрос лучшего ответа.
func (h *GetBestAnswerHandler) Handle(ctx context.Context, query GetBestAnswerQuery) (*GetBestAnswerResult, error) {
	// Валидация входных данных
	if err := query.Validate(); err != nil {
		return nil, shared.WrapError("query", "GetBestAnswer", shared.ErrValidation, err.Error(), err)
	}

	question, err := h.questions.GetByID(ctx, query.QuestionID)
	if err != nil {
		return nil, shared.WrapError("query", "GetBestAnswer", shared.ErrNotFound, "question not found", err)
	}

	result := &GetBestAnswerResult{
		QuestionID:  question.ID(),
		AnswerCount: len(question.Answers()),
		GeneratedAt: time.Now().UTC(),
	}

	best := question.BestAnswer()
	if best == nil {
		return result, nil
	}

	result.HasAnswers = true
	result.Best = &BestAnswerDTO{
		AnswerID:      best.ID(),
		Text:          best.Text(),
		Author:        best.Author().Username(),
		NetScore:      best.NetScore(),
		PositiveVotes: len(best.PositiveVotes()),
		NegativeVotes: len(best.NegativeVotes()),
	}

	return result, nil
}
