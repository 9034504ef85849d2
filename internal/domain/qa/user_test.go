package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "password")
	assert.Error(t, err)

	_, err = NewUser("alice", "")
	assert.Error(t, err)

	u, err := NewUser("alice", "password")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.NotEmpty(t, u.ID())
}

func TestUser_CheckPassword(t *testing.T) {
	u, err := NewUser("alice", "s3cret")
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("s3cret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUser_FollowIdempotent(t *testing.T) {
	users := makeUsers(t, 2)
	alice, bob := users[0], users[1]

	alice.Follow(bob)
	alice.Follow(bob)

	assert.Len(t, alice.Following(), 1)
	assert.True(t, alice.IsFollowing(bob))
}

func TestUser_SelfFollowPermitted(t *testing.T) {
	alice := makeUsers(t, 1)[0]

	alice.Follow(alice)

	assert.True(t, alice.IsFollowing(alice))
}

func TestUser_StopFollow(t *testing.T) {
	users := makeUsers(t, 3)
	alice, bob, carol := users[0], users[1], users[2]

	alice.Follow(bob)
	alice.Follow(carol)

	alice.StopFollow(bob)

	following := alice.Following()
	require.Len(t, following, 1)
	assert.Same(t, carol, following[0])

	// Отписка от чужого пользователя молча игнорируется
	alice.StopFollow(bob)
	assert.Len(t, alice.Following(), 1)
}

func TestUser_AddInterestIdempotent(t *testing.T) {
	alice := makeUsers(t, 1)[0]
	topic, err := NewTopic("go", "")
	require.NoError(t, err)

	alice.AddInterest(topic)
	alice.AddInterest(topic)

	assert.Len(t, alice.Interests(), 1)
}

func TestUser_CalculateScore(t *testing.T) {
	users := makeUsers(t, 4)
	alice, bob, carol, dave := users[0], users[1], users[2], users[3]

	question := newTestQuestion(t, alice, "Вопрос")
	otherQuestion := newTestQuestion(t, bob, "Чужой вопрос")
	answer, err := NewAnswer("ответ", alice, otherQuestion)
	require.NoError(t, err)

	upvote := func(target Votable, u *User) {
		v, err := NewVote(u)
		require.NoError(t, err)
		require.NoError(t, target.AddVote(v))
	}

	// Вопрос и ответ по одному положительному голосу: 10 + 20
	upvote(question, bob)
	upvote(answer, bob)
	assert.Equal(t, 30, alice.CalculateScore())

	// Дополнительные голоса, не меняющие знак большинства,
	// счёт не меняют
	upvote(question, carol)
	upvote(answer, dave)
	assert.Equal(t, 30, alice.CalculateScore())
}

func TestUser_ScoreRequiresStrictMajority(t *testing.T) {
	users := makeUsers(t, 3)
	alice, bob, carol := users[0], users[1], users[2]

	question := newTestQuestion(t, alice, "Вопрос")

	v, err := NewVote(bob)
	require.NoError(t, err)
	require.NoError(t, question.AddVote(v))

	down, err := NewDownvote(carol)
	require.NoError(t, err)
	require.NoError(t, question.AddVote(down))

	// Ничья 1:1 баллов не приносит
	assert.Equal(t, 0, alice.CalculateScore())
}

func TestUser_ScoreWith(t *testing.T) {
	users := makeUsers(t, 2)
	alice, bob := users[0], users[1]

	question := newTestQuestion(t, alice, "Вопрос")
	v, err := NewVote(bob)
	require.NoError(t, err)
	require.NoError(t, question.AddVote(v))

	assert.Equal(t, 7, alice.ScoreWith(7, 13))
}

func TestUser_UnvotedContentScoresZero(t *testing.T) {
	alice := makeUsers(t, 1)[0]
	newTestQuestion(t, alice, "Вопрос без голосов")

	assert.Equal(t, 0, alice.CalculateScore())
}
