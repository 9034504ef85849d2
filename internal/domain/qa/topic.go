package qa

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY: TOPIC
// Тематическая рубрика. Хранит прямые ссылки на вопросы,
// помеченные ею; обратное ребро вопрос→тема поддерживает
// Question.AddTopic атомарно с этим списком.
// ══════════════════════════════════════════════════════════════════════════════

// Topic - тема, объединяющая вопросы.
type Topic struct {
	// id - уникальный идентификатор (UUID).
	id string

	// name - название темы. Непустое.
	name string

	// DescriptionHolder даёт теме изменяемое текстовое описание.
	description *DescriptionHolder

	// questions - вопросы с этой темой, в порядке привязки.
	questions []*Question

	// createdAt - момент создания.
	createdAt time.Time
}

// NewTopic создаёт тему с названием и описанием.
func NewTopic(name, description string) (*Topic, error) {
	if name == "" {
		return nil, shared.NewDomainError("qa", "NewTopic", shared.ErrEmptyValue, "topic name is required")
	}

	return &Topic{
		id:          uuid.New().String(),
		name:        name,
		description: NewDescriptionHolder(description),
		questions:   make([]*Question, 0),
		createdAt:   time.Now().UTC(),
	}, nil
}

// ID возвращает идентификатор темы.
func (t *Topic) ID() string {
	return t.id
}

// Name возвращает название темы.
func (t *Topic) Name() string {
	return t.name
}

// SetName заменяет название темы. Пустое название недопустимо.
func (t *Topic) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("qa", "Topic.SetName", shared.ErrEmptyValue, "topic name is required")
	}
	t.name = name
	return nil
}

// Description возвращает текущее описание.
func (t *Topic) Description() string {
	return t.description.Description()
}

// SetDescription заменяет описание.
func (t *Topic) SetDescription(text string) {
	t.description.SetDescription(text)
}

// CreatedAt возвращает момент создания.
func (t *Topic) CreatedAt() time.Time {
	return t.createdAt
}

// Questions возвращает копию списка вопросов темы в порядке привязки.
func (t *Topic) Questions() []*Question {
	out := make([]*Question, len(t.questions))
	copy(out, t.questions)
	return out
}

// HasQuestion возвращает true, если вопрос уже привязан к теме.
func (t *Topic) HasQuestion(q *Question) bool {
	for _, existing := range t.questions {
		if existing == q {
			return true
		}
	}
	return false
}

// String возвращает строковое представление для логирования.
func (t *Topic) String() string {
	return fmt.Sprintf("Topic{ID: %s, Name: %s, Questions: %d}", t.id, t.name, len(t.questions))
}

// registerQuestion добавляет вопрос в список темы.
// Дубликаты игнорируются. Вызывается из Question.AddTopic.
func (t *Topic) registerQuestion(q *Question) {
	if t.HasQuestion(q) {
		return
	}
	t.questions = append(t.questions, q)
}
