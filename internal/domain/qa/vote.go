package qa

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY: VOTE
// Голос одного пользователя. Полярность изменяема после создания;
// уникальность "один голос на цель" обеспечивает VoteLedger цели,
// а не сам голос.
// ══════════════════════════════════════════════════════════════════════════════

// Vote - голос пользователя за или против сущности.
type Vote struct {
	// id - уникальный идентификатор голоса (UUID).
	id string

	// caster - кто проголосовал. Фиксируется при создании.
	caster *User

	// positive - полярность: true = за, false = против.
	positive bool

	// createdAt - когда голос был создан. Неизменяемо.
	createdAt time.Time
}

// NewVote создаёт положительный голос и регистрирует его
// в коллекции голосов пользователя (побочный эффект создания).
func NewVote(caster *User) (*Vote, error) {
	return newVote(caster, true)
}

// NewDownvote создаёт отрицательный голос.
func NewDownvote(caster *User) (*Vote, error) {
	return newVote(caster, false)
}

func newVote(caster *User, positive bool) (*Vote, error) {
	if caster == nil {
		return nil, shared.NewDomainError("qa", "NewVote", shared.ErrInvalidInput, "caster is required")
	}

	v := &Vote{
		id:        uuid.New().String(),
		caster:    caster,
		positive:  positive,
		createdAt: time.Now().UTC(),
	}
	caster.registerVote(v)
	return v, nil
}

// ID возвращает идентификатор голоса.
func (v *Vote) ID() string {
	return v.id
}

// Caster возвращает проголосовавшего пользователя.
func (v *Vote) Caster() *User {
	return v.caster
}

// IsLike возвращает true, если голос положительный.
func (v *Vote) IsLike() bool {
	return v.positive
}

// Like делает голос положительным. Работает и после того,
// как голос уже учтён в реестре: последующие выборки это увидят.
func (v *Vote) Like() {
	v.positive = true
}

// Dislike делает голос отрицательным.
func (v *Vote) Dislike() {
	v.positive = false
}

// CreatedAt возвращает время создания голоса.
func (v *Vote) CreatedAt() time.Time {
	return v.createdAt
}

// String возвращает строковое представление для логирования.
func (v *Vote) String() string {
	polarity := "like"
	if !v.positive {
		polarity = "dislike"
	}
	return fmt.Sprintf("Vote{ID: %s, Caster: %s, %s}", v.id, v.caster.Username(), polarity)
}
