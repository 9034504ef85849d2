package feed

import (
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/pkg/timeutil"
)

// NewsStrategy отбирает вопросы, созданные сегодня.
type NewsStrategy struct {
	now func() time.Time
}

// NewNewsStrategy создаёт стратегию новостей с заданными часами.
func NewNewsStrategy(now func() time.Time) *NewsStrategy {
	return &NewsStrategy{now: now}
}

// Candidates возвращает вопросы из пула, созданные в текущую
// календарную дату часов стратегии.
func (s *NewsStrategy) Candidates(pool []*qa.Question, _ *qa.User) []*qa.Question {
	return questionsOfDay(pool, s.now())
}

// questionsOfDay возвращает вопросы пула, созданные в ту же
// календарную дату, что и day. Порядок пула сохраняется.
func questionsOfDay(pool []*qa.Question, day time.Time) []*qa.Question {
	out := make([]*qa.Question, 0)
	for _, q := range pool {
		if timeutil.SameDay(q.CreatedAt(), day) {
			out = append(out, q)
		}
	}
	return out
}
