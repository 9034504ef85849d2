package qa

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY: QUESTION
// Вопрос пользователя: заголовок, описание, темы, ответы и голоса.
// Голосование и описание получены композицией (VoteLedger,
// DescriptionHolder); лучший ответ пересчитывается при каждом
// обращении и нигде не кэшируется.
// ══════════════════════════════════════════════════════════════════════════════

// Question - вопрос на платформе.
type Question struct {
	// id - уникальный идентификатор (UUID).
	id string

	// title - заголовок вопроса.
	title string

	// author - автор вопроса. Фиксируется при создании.
	author *User

	// description - изменяемое текстовое описание.
	description *DescriptionHolder

	// ledger - реестр голосов за вопрос.
	ledger *VoteLedger

	// topics - темы вопроса, в порядке привязки.
	topics []*Topic

	// answers - ответы на вопрос, в порядке добавления.
	answers []*Answer

	// visible - виден ли вопрос. По умолчанию true;
	// выборки лент на этот флаг не смотрят.
	visible bool

	// createdAt - момент создания. Определяет попадание
	// в ленты новых и популярных вопросов.
	createdAt time.Time
}

// QuestionParams - параметры создания вопроса.
type QuestionParams struct {
	// Title - заголовок. Конструктор его не проверяет:
	// пустой заголовок отсекает только SetTitle.
	Title string

	// Description - начальное описание.
	Description string

	// Author - автор. Обязателен.
	Author *User

	// Topics - начальные темы. Привязываются по очереди,
	// как если бы их передали в AddTopic.
	Topics []*Topic

	// CreatedAt - момент создания. Нулевое значение
	// заменяется текущим временем UTC.
	CreatedAt time.Time
}

// NewQuestionParams создаёт параметры вопроса без начальных тем.
func NewQuestionParams(title, description string, author *User) QuestionParams {
	return QuestionParams{
		Title:       title,
		Description: description,
		Author:      author,
	}
}

// NewQuestion создаёт вопрос и регистрирует его у автора.
// Начальные темы привязываются до регистрации: дубликат в Topics
// возвращает ошибку, не оставляя вопрос ни в коллекции автора,
// ни в коллекциях тем.
func NewQuestion(params QuestionParams) (*Question, error) {
	if params.Author == nil {
		return nil, shared.NewDomainError("qa", "NewQuestion", shared.ErrInvalidInput, "author is required")
	}

	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	q := &Question{
		id:          uuid.New().String(),
		title:       params.Title,
		author:      params.Author,
		description: NewDescriptionHolder(params.Description),
		ledger:      NewVoteLedger(),
		topics:      make([]*Topic, 0),
		answers:     make([]*Answer, 0),
		visible:     true,
		createdAt:   createdAt,
	}

	// Сначала целиком прямой список, затем обратные рёбра:
	// отклонённый дубликат не оставляет фантомного вопроса
	// в коллекциях уже проверенных тем.
	for _, t := range params.Topics {
		if err := q.attachTopic(t); err != nil {
			return nil, err
		}
	}
	for _, t := range q.topics {
		t.registerQuestion(q)
	}

	params.Author.registerQuestion(q)
	return q, nil
}

// ID возвращает идентификатор вопроса.
func (q *Question) ID() string {
	return q.id
}

// Title возвращает заголовок.
func (q *Question) Title() string {
	return q.title
}

// SetTitle заменяет заголовок. Пустая строка отклоняется;
// строка из одних пробелов - допустимый заголовок.
func (q *Question) SetTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("qa", "Question.SetTitle", shared.ErrInvalidTitle, "title must not be empty")
	}
	q.title = title
	return nil
}

// Author возвращает автора вопроса.
func (q *Question) Author() *User {
	return q.author
}

// Description возвращает текущее описание.
func (q *Question) Description() string {
	return q.description.Description()
}

// SetDescription заменяет описание.
func (q *Question) SetDescription(text string) {
	q.description.SetDescription(text)
}

// CreatedAt возвращает момент создания.
func (q *Question) CreatedAt() time.Time {
	return q.createdAt
}

// IsVisible возвращает true, если вопрос виден.
func (q *Question) IsVisible() bool {
	return q.visible
}

// Publish делает вопрос видимым.
func (q *Question) Publish() {
	q.visible = true
}

// Hide скрывает вопрос.
func (q *Question) Hide() {
	q.visible = false
}

// AddTopic привязывает тему к вопросу и вопрос к теме.
// Повторная привязка той же темы возвращает ошибку, не меняя
// ни одну из сторон. Ребро двустороннее: обе стороны обновляются
// в одном вызове.
func (q *Question) AddTopic(t *Topic) error {
	if err := q.attachTopic(t); err != nil {
		return err
	}
	t.registerQuestion(q)
	return nil
}

// attachTopic проверяет тему и добавляет её в прямой список.
// Обратное ребро тема→вопрос не трогает.
func (q *Question) attachTopic(t *Topic) error {
	if t == nil {
		return shared.NewDomainError("qa", "Question.AddTopic", shared.ErrInvalidInput, "topic is required")
	}

	for _, existing := range q.topics {
		if existing == t {
			return shared.NewDomainError("qa", "Question.AddTopic", shared.ErrDuplicateTopic,
				"topic "+t.Name()+" is already attached")
		}
	}

	q.topics = append(q.topics, t)
	return nil
}

// Topics возвращает копию списка тем вопроса.
func (q *Question) Topics() []*Topic {
	out := make([]*Topic, len(q.topics))
	copy(out, q.topics)
	return out
}

// HasTopic возвращает true, если тема привязана к вопросу.
func (q *Question) HasTopic(t *Topic) bool {
	for _, existing := range q.topics {
		if existing == t {
			return true
		}
	}
	return false
}

// AddAnswer добавляет ответ к вопросу. Повторное добавление
// того же ответа молча игнорируется.
func (q *Question) AddAnswer(a *Answer) {
	if a == nil {
		return
	}
	for _, existing := range q.answers {
		if existing == a {
			return
		}
	}
	q.answers = append(q.answers, a)
}

// Answers возвращает копию списка ответов в порядке добавления.
func (q *Question) Answers() []*Answer {
	out := make([]*Answer, len(q.answers))
	copy(out, q.answers)
	return out
}

// BestAnswer возвращает ответ с максимальным чистым счётом
// (положительные минус отрицательные голоса). При равенстве
// побеждает добавленный раньше. Для вопроса без ответов - nil.
// Результат пересчитывается при каждом вызове.
func (q *Question) BestAnswer() *Answer {
	var best *Answer
	bestScore := 0
	for _, a := range q.answers {
		score := a.NetScore()
		if best == nil || score > bestScore {
			best = a
			bestScore = score
		}
	}
	return best
}

// AddVote добавляет голос за вопрос. Второй голос того же
// пользователя отклоняется реестром.
func (q *Question) AddVote(v *Vote) error {
	return q.ledger.Add(v)
}

// Votes возвращает все голоса вопроса.
func (q *Question) Votes() []*Vote {
	return q.ledger.Votes()
}

// PositiveVotes возвращает положительные голоса.
func (q *Question) PositiveVotes() []*Vote {
	return q.ledger.Positive()
}

// NegativeVotes возвращает отрицательные голоса.
func (q *Question) NegativeVotes() []*Vote {
	return q.ledger.Negative()
}

// NetScore возвращает чистый счёт вопроса:
// положительные голоса минус отрицательные.
func (q *Question) NetScore() int {
	return q.ledger.PositiveCount() - q.ledger.NegativeCount()
}

// String возвращает строковое представление для логирования.
func (q *Question) String() string {
	return fmt.Sprintf("Question{ID: %s, Title: %s, Author: %s, Answers: %d}",
		q.id, q.title, q.author.Username(), len(q.answers))
}
