package feed

import (
	"github.com/cuoora/cuoora-core/internal/domain/qa"
)

// ══════════════════════════════════════════════════════════════════════════════
// STRATEGY CONTRACT
// Четыре стратегии отличаются только способом отбора кандидатов;
// ранжирование, усечение и самоисключение выполняет общий конвейер.
// ══════════════════════════════════════════════════════════════════════════════

// Kind - вид ленты.
type Kind string

const (
	// KindSocial - вопросы от пользователей, на которых подписан запрашивающий.
	KindSocial Kind = "social"

	// KindTopics - вопросы из тем, интересных запрашивающему.
	KindTopics Kind = "topics"

	// KindNews - вопросы, созданные сегодня.
	KindNews Kind = "news"

	// KindPopularToday - сегодняшние вопросы с числом положительных
	// голосов строго выше среднего по сегодняшним вопросам.
	KindPopularToday Kind = "popular_today"
)

// IsValid проверяет корректность вида ленты.
func (k Kind) IsValid() bool {
	switch k {
	case KindSocial, KindTopics, KindNews, KindPopularToday:
		return true
	}
	return false
}

// String возвращает строковое представление вида.
func (k Kind) String() string {
	return string(k)
}

// AllKinds возвращает все виды лент в фиксированном порядке.
func AllKinds() []Kind {
	return []Kind{KindSocial, KindTopics, KindNews, KindPopularToday}
}

// Strategy отбирает кандидатов для одного вида ленты.
// Стратегии не хранят состояния между вызовами: каждый вызов
// читает актуальный граф сущностей.
type Strategy interface {
	// Candidates возвращает вопросы-кандидаты для пользователя
	// из общего пула. Порядок кандидатов сохраняет порядок пула.
	Candidates(pool []*qa.Question, user *qa.User) []*qa.Question
}
