package qa

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY: ANSWER
// Ответ на вопрос. Создание сразу связывает ответ с вопросом
// и автором; голосование получено композицией с VoteLedger.
// ══════════════════════════════════════════════════════════════════════════════

// Answer - ответ пользователя на вопрос.
type Answer struct {
	// id - уникальный идентификатор (UUID).
	id string

	// text - текст ответа.
	text string

	// author - автор ответа.
	author *User

	// question - вопрос, к которому относится ответ.
	question *Question

	// ledger - реестр голосов за ответ.
	ledger *VoteLedger

	// createdAt - момент создания.
	createdAt time.Time
}

// NewAnswer создаёт ответ и регистрирует его у вопроса и автора.
func NewAnswer(text string, author *User, question *Question) (*Answer, error) {
	if author == nil {
		return nil, shared.NewDomainError("qa", "NewAnswer", shared.ErrInvalidInput, "author is required")
	}
	if question == nil {
		return nil, shared.NewDomainError("qa", "NewAnswer", shared.ErrInvalidInput, "question is required")
	}

	a := &Answer{
		id:        uuid.New().String(),
		text:      text,
		author:    author,
		question:  question,
		ledger:    NewVoteLedger(),
		createdAt: time.Now().UTC(),
	}

	question.AddAnswer(a)
	author.registerAnswer(a)
	return a, nil
}

// ID возвращает идентификатор ответа.
func (a *Answer) ID() string {
	return a.id
}

// Text возвращает текст ответа.
func (a *Answer) Text() string {
	return a.text
}

// SetText заменяет текст ответа.
func (a *Answer) SetText(text string) {
	a.text = text
}

// Author возвращает автора ответа.
func (a *Answer) Author() *User {
	return a.author
}

// Question возвращает вопрос ответа.
func (a *Answer) Question() *Question {
	return a.question
}

// CreatedAt возвращает момент создания.
func (a *Answer) CreatedAt() time.Time {
	return a.createdAt
}

// AddVote добавляет голос за ответ. Второй голос того же
// пользователя отклоняется реестром.
func (a *Answer) AddVote(v *Vote) error {
	return a.ledger.Add(v)
}

// Votes возвращает все голоса ответа.
func (a *Answer) Votes() []*Vote {
	return a.ledger.Votes()
}

// PositiveVotes возвращает положительные голоса.
func (a *Answer) PositiveVotes() []*Vote {
	return a.ledger.Positive()
}

// NegativeVotes возвращает отрицательные голоса.
func (a *Answer) NegativeVotes() []*Vote {
	return a.ledger.Negative()
}

// NetScore возвращает чистый счёт ответа:
// положительные голоса минус отрицательные.
func (a *Answer) NetScore() int {
	return a.ledger.PositiveCount() - a.ledger.NegativeCount()
}

// String возвращает строковое представление для логирования.
func (a *Answer) String() string {
	return fmt.Sprintf("Answer{ID: %s, Author: %s, Score: %d}", a.id, a.author.Username(), a.NetScore())
}
