package feed

import (
	"github.com/cuoora/cuoora-core/internal/domain/qa"
)

// SocialStrategy отбирает вопросы пользователей,
// на которых подписан запрашивающий.
type SocialStrategy struct{}

// NewSocialStrategy создаёт социальную стратегию.
func NewSocialStrategy() *SocialStrategy {
	return &SocialStrategy{}
}

// Candidates возвращает объединение вопросов всех подписок
// пользователя. Пул не используется: кандидаты читаются
// напрямую из коллекций авторов, в порядке подписок.
func (s *SocialStrategy) Candidates(_ []*qa.Question, user *qa.User) []*qa.Question {
	out := make([]*qa.Question, 0)
	for _, followed := range user.Following() {
		out = append(out, followed.Questions()...)
	}
	return out
}
