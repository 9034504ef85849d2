package qa

import (
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VOTE LEDGER
// Реестр голосов одной сущности. Хранит голоса в порядке поступления
// и не допускает второго голоса от того же пользователя.
// Сущности (Question, Answer) получают голосование через композицию
// с реестром, а не через наследование.
// ══════════════════════════════════════════════════════════════════════════════

// VoteLedger - упорядоченный реестр голосов с дедупликацией по автору.
type VoteLedger struct {
	votes []*Vote
}

// NewVoteLedger создаёт пустой реестр.
func NewVoteLedger() *VoteLedger {
	return &VoteLedger{
		votes: make([]*Vote, 0),
	}
}

// Add добавляет голос в конец реестра.
// Если этот пользователь уже голосовал здесь, возвращает ошибку,
// и реестр остаётся без изменений.
func (l *VoteLedger) Add(v *Vote) error {
	if v == nil {
		return shared.NewDomainError("qa", "VoteLedger.Add", shared.ErrInvalidInput, "vote is required")
	}

	for _, existing := range l.votes {
		if existing.Caster() == v.Caster() {
			return shared.NewDomainError("qa", "VoteLedger.Add", shared.ErrDuplicateVote,
				"user "+v.Caster().Username()+" has already voted")
		}
	}

	l.votes = append(l.votes, v)
	return nil
}

// Votes возвращает копию списка всех голосов в порядке поступления.
func (l *VoteLedger) Votes() []*Vote {
	out := make([]*Vote, len(l.votes))
	copy(out, l.votes)
	return out
}

// Positive возвращает положительные голосы, сохраняя порядок поступления.
// Полярность читается на момент вызова: голос, переключённый через
// Dislike, из этой выборки исчезает.
func (l *VoteLedger) Positive() []*Vote {
	out := make([]*Vote, 0, len(l.votes))
	for _, v := range l.votes {
		if v.IsLike() {
			out = append(out, v)
		}
	}
	return out
}

// Negative возвращает отрицательные голосы в порядке поступления.
func (l *VoteLedger) Negative() []*Vote {
	out := make([]*Vote, 0, len(l.votes))
	for _, v := range l.votes {
		if !v.IsLike() {
			out = append(out, v)
		}
	}
	return out
}

// PositiveCount возвращает число положительных голосов.
func (l *VoteLedger) PositiveCount() int {
	n := 0
	for _, v := range l.votes {
		if v.IsLike() {
			n++
		}
	}
	return n
}

// NegativeCount возвращает число отрицательных голосов.
func (l *VoteLedger) NegativeCount() int {
	n := 0
	for _, v := range l.votes {
		if !v.IsLike() {
			n++
		}
	}
	return n
}

// Len возвращает общее число голосов.
func (l *VoteLedger) Len() int {
	return len(l.votes)
}
