package qa

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Эти интерфейсы определяют контракт для работы с хранилищем данных.
// Реализации находятся в infrastructure/memory.
// ══════════════════════════════════════════════════════════════════════════════

// UserRepository определяет операции хранилища для пользователей.
type UserRepository interface {
	// Save сохраняет нового пользователя.
	// Возвращает ErrUserExists, если имя уже занято.
	Save(ctx context.Context, u *User) error

	// GetByID возвращает пользователя по ID.
	// Возвращает ErrUserNotFound, если пользователь не найден.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByUsername возвращает пользователя по имени.
	// Возвращает ErrUserNotFound, если пользователь не найден.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetAll возвращает всех пользователей в порядке регистрации.
	GetAll(ctx context.Context) ([]*User, error)

	// Count возвращает количество пользователей.
	Count(ctx context.Context) (int, error)
}

// QuestionRepository определяет операции хранилища для вопросов.
type QuestionRepository interface {
	// Save сохраняет новый вопрос.
	Save(ctx context.Context, q *Question) error

	// GetByID возвращает вопрос по ID.
	// Возвращает ErrQuestionNotFound, если вопрос не найден.
	GetByID(ctx context.Context, id string) (*Question, error)

	// GetAll возвращает все вопросы в порядке создания.
	GetAll(ctx context.Context) ([]*Question, error)

	// Count возвращает количество вопросов.
	Count(ctx context.Context) (int, error)
}

// AnswerRepository определяет операции хранилища для ответов.
type AnswerRepository interface {
	// Save сохраняет новый ответ.
	Save(ctx context.Context, a *Answer) error

	// GetByID возвращает ответ по ID.
	// Возвращает ErrAnswerNotFound, если ответ не найден.
	GetByID(ctx context.Context, id string) (*Answer, error)
}

// TopicRepository определяет операции хранилища для тем.
type TopicRepository interface {
	// Save сохраняет новую тему.
	Save(ctx context.Context, t *Topic) error

	// GetByID возвращает тему по ID.
	// Возвращает ErrTopicNotFound, если тема не найдена.
	GetByID(ctx context.Context, id string) (*Topic, error)

	// GetByName возвращает тему по названию.
	// Возвращает ErrTopicNotFound, если тема не найдена.
	GetByName(ctx context.Context, name string) (*Topic, error)

	// GetAll возвращает все темы в порядке создания.
	GetAll(ctx context.Context) ([]*Topic, error)
}

// VotableRepository находит голосуемую сущность любого вида по ID.
// Используется командой голосования: цель может быть
// и вопросом, и ответом.
type VotableRepository interface {
	// GetVotable возвращает вопрос или ответ с указанным ID.
	// Возвращает ErrVotableNotFound, если ни того, ни другого нет.
	GetVotable(ctx context.Context, id string) (Votable, error)
}
