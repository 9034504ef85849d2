package feed

import (
	"github.com/cuoora/cuoora-core/internal/domain/qa"
)

// TopicsStrategy отбирает вопросы из тем,
// на которые подписан запрашивающий.
type TopicsStrategy struct{}

// NewTopicsStrategy создаёт тематическую стратегию.
func NewTopicsStrategy() *TopicsStrategy {
	return &TopicsStrategy{}
}

// Candidates возвращает объединение вопросов всех интересных
// пользователю тем. Вопрос с двумя интересными темами попадает
// в выборку один раз.
func (s *TopicsStrategy) Candidates(_ []*qa.Question, user *qa.User) []*qa.Question {
	seen := make(map[*qa.Question]bool)
	out := make([]*qa.Question, 0)
	for _, topic := range user.Interests() {
		for _, q := range topic.Questions() {
			if seen[q] {
				continue
			}
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}
