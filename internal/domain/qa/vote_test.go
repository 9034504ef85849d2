package qa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeUsers создаёт n пользователей для тестов голосования.
func makeUsers(t *testing.T, n int) []*User {
	t.Helper()
	users := make([]*User, n)
	for i := range users {
		u, err := NewUser(fmt.Sprintf("user%02d", i), "password")
		require.NoError(t, err)
		users[i] = u
	}
	return users
}

func TestNewVote_Defaults(t *testing.T) {
	caster := makeUsers(t, 1)[0]

	v, err := NewVote(caster)
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID())
	assert.True(t, v.IsLike())
	assert.Same(t, caster, v.Caster())
	assert.False(t, v.CreatedAt().IsZero())
}

func TestNewDownvote(t *testing.T) {
	caster := makeUsers(t, 1)[0]

	v, err := NewDownvote(caster)
	require.NoError(t, err)

	assert.False(t, v.IsLike())
}

func TestNewVote_NilCaster(t *testing.T) {
	v, err := NewVote(nil)
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestNewVote_RegistersWithCaster(t *testing.T) {
	caster := makeUsers(t, 1)[0]

	v, err := NewVote(caster)
	require.NoError(t, err)

	// Голос попадает в коллекцию пользователя сразу при создании,
	// даже если ни один реестр его ещё не учёл.
	votes := caster.Votes()
	require.Len(t, votes, 1)
	assert.Same(t, v, votes[0])
}

func TestVote_PolarityFlip(t *testing.T) {
	caster := makeUsers(t, 1)[0]

	v, err := NewVote(caster)
	require.NoError(t, err)

	v.Dislike()
	assert.False(t, v.IsLike())

	v.Like()
	assert.True(t, v.IsLike())
}
