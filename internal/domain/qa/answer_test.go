package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

func TestNewAnswer_RegistersEverywhere(t *testing.T) {
	users := makeUsers(t, 2)
	question := newTestQuestion(t, users[0], "вопрос")

	answer, err := NewAnswer("ответ", users[1], question)
	require.NoError(t, err)

	assert.Equal(t, "ответ", answer.Text())
	assert.Same(t, users[1], answer.Author())
	assert.Same(t, question, answer.Question())
	assert.False(t, answer.CreatedAt().IsZero())

	require.Len(t, question.Answers(), 1)
	assert.Same(t, answer, question.Answers()[0])
	require.Len(t, users[1].Answers(), 1)
	assert.Same(t, answer, users[1].Answers()[0])
}

func TestNewAnswer_RequiresAuthorAndQuestion(t *testing.T) {
	users := makeUsers(t, 1)
	question := newTestQuestion(t, users[0], "вопрос")

	_, err := NewAnswer("ответ", nil, question)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewAnswer("ответ", users[0], nil)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestAnswer_SetText(t *testing.T) {
	users := makeUsers(t, 1)
	question := newTestQuestion(t, users[0], "вопрос")
	answer, err := NewAnswer("черновик", users[0], question)
	require.NoError(t, err)

	answer.SetText("финальная редакция")
	assert.Equal(t, "финальная редакция", answer.Text())
}

func TestAnswer_VotingSurface(t *testing.T) {
	users := makeUsers(t, 4)
	question := newTestQuestion(t, users[0], "вопрос")
	answer, err := NewAnswer("ответ", users[0], question)
	require.NoError(t, err)

	for _, u := range users[1:3] {
		v, err := NewVote(u)
		require.NoError(t, err)
		require.NoError(t, answer.AddVote(v))
	}
	down, err := NewDownvote(users[3])
	require.NoError(t, err)
	require.NoError(t, answer.AddVote(down))

	assert.Len(t, answer.Votes(), 3)
	assert.Len(t, answer.PositiveVotes(), 2)
	assert.Len(t, answer.NegativeVotes(), 1)
	assert.Equal(t, 1, answer.NetScore())

	// Повторный голос того же пользователя отклоняется
	dup, err := NewVote(users[1])
	require.NoError(t, err)
	assert.ErrorIs(t, answer.AddVote(dup), shared.ErrDuplicateVote)
}
