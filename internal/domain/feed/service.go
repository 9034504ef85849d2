package feed

import (
	"time"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// DefaultLimit - максимальный размер ленты по умолчанию.
const DefaultLimit = 100

// ══════════════════════════════════════════════════════════════════════════════
// FEED SERVICE
// Держит пул всех известных вопросов (только добавление) и выдаёт
// четыре вида лент. Результаты не кэшируются: каждый вызов
// пересчитывается от текущего состояния графа сущностей.
// ══════════════════════════════════════════════════════════════════════════════

// Service - сервис лент вопросов.
type Service struct {
	// questions - пул вопросов в порядке добавления.
	questions []*qa.Question

	// strategies - стратегии отбора по видам лент.
	strategies map[Kind]Strategy

	// now - часы сервиса. Подменяются в тестах.
	now func() time.Time

	// limit - максимальный размер ленты.
	limit int
}

// ServiceParams - параметры создания сервиса лент.
type ServiceParams struct {
	// Limit - максимальный размер ленты. Ноль означает DefaultLimit.
	Limit int

	// Now - часы сервиса. nil означает time.Now.
	Now func() time.Time
}

// NewService создаёт сервис лент с пустым пулом вопросов.
func NewService(params ServiceParams) *Service {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		questions: make([]*qa.Question, 0),
		strategies: map[Kind]Strategy{
			KindSocial:       NewSocialStrategy(),
			KindTopics:       NewTopicsStrategy(),
			KindNews:         NewNewsStrategy(now),
			KindPopularToday: NewPopularTodayStrategy(now),
		},
		now:   now,
		limit: limit,
	}
}

// AddQuestion добавляет вопрос в пул. Вопросы из пула не удаляются.
func (s *Service) AddQuestion(q *qa.Question) {
	if q == nil {
		return
	}
	s.questions = append(s.questions, q)
}

// Questions возвращает копию пула в порядке добавления.
func (s *Service) Questions() []*qa.Question {
	out := make([]*qa.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Limit возвращает максимальный размер ленты.
func (s *Service) Limit() int {
	return s.limit
}

// For возвращает ленту указанного вида для пользователя.
// Неизвестный вид и nil-пользователь - ошибки.
func (s *Service) For(kind Kind, user *qa.User) ([]*qa.Question, error) {
	if user == nil {
		return nil, shared.NewDomainError("feed", "Service.For", shared.ErrNilRequester, "requesting user is required")
	}
	strategy, ok := s.strategies[kind]
	if !ok {
		return nil, shared.NewDomainError("feed", "Service.For", shared.ErrUnknownFeedKind,
			"unknown feed kind: "+kind.String())
	}

	candidates := strategy.Candidates(s.questions, user)
	return filterAndSort(candidates, user, s.limit), nil
}

// SocialFor возвращает социальную ленту пользователя.
func (s *Service) SocialFor(user *qa.User) ([]*qa.Question, error) {
	return s.For(KindSocial, user)
}

// TopicsFor возвращает тематическую ленту пользователя.
func (s *Service) TopicsFor(user *qa.User) ([]*qa.Question, error) {
	return s.For(KindTopics, user)
}

// NewsFor возвращает ленту сегодняшних вопросов.
func (s *Service) NewsFor(user *qa.User) ([]*qa.Question, error) {
	return s.For(KindNews, user)
}

// PopularTodayFor возвращает ленту популярного за сегодня.
func (s *Service) PopularTodayFor(user *qa.User) ([]*qa.Question, error) {
	return s.For(KindPopularToday, user)
}
