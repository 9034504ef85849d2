package qa

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// Баллы за единицу контента при подсчёте репутации по умолчанию.
const (
	DefaultQuestionPoints = 10
	DefaultAnswerPoints   = 20
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY: USER
// Пользователь платформы: учётные данные, подписки, интересы
// и весь созданный им контент. Коллекции хранятся в порядке
// добавления; обратные ссылки контента на автора поддерживаются
// самими конструкторами контента.
// ══════════════════════════════════════════════════════════════════════════════

// User - зарегистрированный пользователь.
type User struct {
	// id - уникальный идентификатор (UUID).
	id string

	// username - имя для входа. Непустое.
	username string

	// passwordHash - bcrypt-хэш пароля. Открытый пароль не хранится.
	passwordHash []byte

	// following - на кого подписан пользователь, в порядке подписки.
	following []*User

	// interests - темы, на которые подписан пользователь.
	interests []*Topic

	// questions - заданные вопросы, в порядке создания.
	questions []*Question

	// answers - данные ответы, в порядке создания.
	answers []*Answer

	// votes - отданные голоса, в порядке создания.
	votes []*Vote

	// createdAt - момент регистрации.
	createdAt time.Time
}

// NewUser создаёт пользователя с именем и паролем.
// Пароль хэшируется через bcrypt и в открытом виде не сохраняется.
func NewUser(username, password string) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("qa", "NewUser", shared.ErrEmptyUsername, "username is required")
	}
	if password == "" {
		return nil, shared.NewDomainError("qa", "NewUser", shared.ErrEmptyPassword, "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.WrapError("qa", "NewUser", shared.ErrInvalidState, "failed to hash password", err)
	}

	return &User{
		id:           uuid.New().String(),
		username:     username,
		passwordHash: hash,
		following:    make([]*User, 0),
		interests:    make([]*Topic, 0),
		questions:    make([]*Question, 0),
		answers:      make([]*Answer, 0),
		votes:        make([]*Vote, 0),
		createdAt:    time.Now().UTC(),
	}, nil
}

// ID возвращает идентификатор пользователя.
func (u *User) ID() string {
	return u.id
}

// Username возвращает имя пользователя.
func (u *User) Username() string {
	return u.username
}

// CheckPassword сверяет пароль с сохранённым хэшем.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}

// CreatedAt возвращает момент регистрации.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Follow добавляет подписку на другого пользователя.
// Повторная подписка и подписка на nil молча игнорируются.
// Подписка на самого себя допустима.
func (u *User) Follow(other *User) {
	if other == nil {
		return
	}
	for _, f := range u.following {
		if f == other {
			return
		}
	}
	u.following = append(u.following, other)
}

// StopFollow убирает подписку, сохраняя порядок остальных.
// Отсутствующая подписка молча игнорируется.
func (u *User) StopFollow(other *User) {
	for i, f := range u.following {
		if f == other {
			u.following = append(u.following[:i], u.following[i+1:]...)
			return
		}
	}
}

// Following возвращает копию списка подписок в порядке добавления.
func (u *User) Following() []*User {
	out := make([]*User, len(u.following))
	copy(out, u.following)
	return out
}

// IsFollowing возвращает true, если подписка существует.
func (u *User) IsFollowing(other *User) bool {
	for _, f := range u.following {
		if f == other {
			return true
		}
	}
	return false
}

// AddInterest добавляет тему в интересы. Дубликаты молча игнорируются.
func (u *User) AddInterest(t *Topic) {
	if t == nil {
		return
	}
	for _, existing := range u.interests {
		if existing == t {
			return
		}
	}
	u.interests = append(u.interests, t)
}

// Interests возвращает копию списка интересов.
func (u *User) Interests() []*Topic {
	out := make([]*Topic, len(u.interests))
	copy(out, u.interests)
	return out
}

// Questions возвращает копию списка заданных вопросов.
func (u *User) Questions() []*Question {
	out := make([]*Question, len(u.questions))
	copy(out, u.questions)
	return out
}

// Answers возвращает копию списка данных ответов.
func (u *User) Answers() []*Answer {
	out := make([]*Answer, len(u.answers))
	copy(out, u.answers)
	return out
}

// Votes возвращает копию списка отданных голосов.
func (u *User) Votes() []*Vote {
	out := make([]*Vote, len(u.votes))
	copy(out, u.votes)
	return out
}

// CalculateScore считает репутацию по умолчанию:
// 10 баллов за вопрос и 20 за ответ, если у единицы контента
// положительных голосов строго больше, чем отрицательных.
// Значение не кэшируется и пересчитывается при каждом вызове.
func (u *User) CalculateScore() int {
	return u.ScoreWith(DefaultQuestionPoints, DefaultAnswerPoints)
}

// ScoreWith считает репутацию с заданными весами вопроса и ответа.
func (u *User) ScoreWith(questionPoints, answerPoints int) int {
	score := 0
	for _, q := range u.questions {
		if len(q.PositiveVotes()) > len(q.NegativeVotes()) {
			score += questionPoints
		}
	}
	for _, a := range u.answers {
		if len(a.PositiveVotes()) > len(a.NegativeVotes()) {
			score += answerPoints
		}
	}
	return score
}

// String возвращает строковое представление для логирования.
func (u *User) String() string {
	return fmt.Sprintf("User{ID: %s, Username: %s, Questions: %d, Answers: %d}",
		u.id, u.username, len(u.questions), len(u.answers))
}

// registerQuestion добавляет вопрос в коллекцию автора.
// Повторная регистрация игнорируется. Вызывается конструктором вопроса.
func (u *User) registerQuestion(q *Question) {
	for _, existing := range u.questions {
		if existing == q {
			return
		}
	}
	u.questions = append(u.questions, q)
}

// registerAnswer добавляет ответ в коллекцию автора.
func (u *User) registerAnswer(a *Answer) {
	for _, existing := range u.answers {
		if existing == a {
			return
		}
	}
	u.answers = append(u.answers, a)
}

// registerVote добавляет голос в коллекцию автора.
// Голос попадает сюда при создании, ещё до учёта в каком-либо реестре.
func (u *User) registerVote(v *Vote) {
	u.votes = append(u.votes, v)
}
