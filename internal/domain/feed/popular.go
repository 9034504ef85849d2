package feed

import (
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
)

// PopularTodayStrategy отбирает сегодняшние вопросы, у которых
// число положительных голосов строго выше среднего
// по всем сегодняшним вопросам.
type PopularTodayStrategy struct {
	now func() time.Time
}

// NewPopularTodayStrategy создаёт стратегию популярного за день.
func NewPopularTodayStrategy(now func() time.Time) *PopularTodayStrategy {
	return &PopularTodayStrategy{now: now}
}

// Candidates возвращает сегодняшние вопросы выше среднего.
// Если сегодня вопросов нет, результат пуст: среднее
// по пустому множеству не вычисляется.
func (s *PopularTodayStrategy) Candidates(pool []*qa.Question, _ *qa.User) []*qa.Question {
	today := questionsOfDay(pool, s.now())
	if len(today) == 0 {
		return []*qa.Question{}
	}

	total := 0
	for _, q := range today {
		total += len(q.PositiveVotes())
	}
	average := float64(total) / float64(len(today))

	out := make([]*qa.Question, 0)
	for _, q := range today {
		if float64(len(q.PositiveVotes())) > average {
			out = append(out, q)
		}
	}
	return out
}
