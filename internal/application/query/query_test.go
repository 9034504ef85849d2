package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuoora/cuoora-core/internal/domain/feed"
	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
	"github.com/cuoora/cuoora-core/internal/infrastructure/memory"
)

// queryEnv собирает хранилище, сервис лент и небольшой граф сущностей
// для сквозных тестов обработчиков запросов.
type queryEnv struct {
	store  *memory.Store
	feeds  *feed.Service
	voters []*qa.User
}

func newQueryEnv(t *testing.T) *queryEnv {
	t.Helper()

	env := &queryEnv{
		store: memory.NewStore(),
		feeds: feed.NewService(feed.ServiceParams{}),
	}
	for i := 0; i < 10; i++ {
		env.voters = append(env.voters, env.user(t, fmt.Sprintf("voter%02d", i)))
	}
	return env
}

func (e *queryEnv) user(t *testing.T, username string) *qa.User {
	t.Helper()
	u, err := qa.NewUser(username, username+"-secret")
	require.NoError(t, err)
	require.NoError(t, e.store.SaveUser(context.Background(), u))
	return u
}

func (e *queryEnv) question(t *testing.T, author *qa.User, title string, positive, negative int) *qa.Question {
	t.Helper()
	q, err := qa.NewQuestion(qa.NewQuestionParams(title, "", author))
	require.NoError(t, err)
	require.NoError(t, e.store.SaveQuestion(context.Background(), q))
	e.feeds.AddQuestion(q)
	e.vote(t, q, positive, negative)
	return q
}

func (e *queryEnv) answer(t *testing.T, author *qa.User, q *qa.Question, text string, positive, negative int) *qa.Answer {
	t.Helper()
	a, err := qa.NewAnswer(text, author, q)
	require.NoError(t, err)
	require.NoError(t, e.store.SaveAnswer(context.Background(), a))
	e.vote(t, a, positive, negative)
	return a
}

func (e *queryEnv) vote(t *testing.T, target qa.Votable, positive, negative int) {
	t.Helper()
	require.LessOrEqual(t, positive+negative, len(e.voters))
	for i := 0; i < positive; i++ {
		v, err := qa.NewVote(e.voters[i])
		require.NoError(t, err)
		require.NoError(t, target.AddVote(v))
	}
	for i := 0; i < negative; i++ {
		v, err := qa.NewDownvote(e.voters[positive+i])
		require.NoError(t, err)
		require.NoError(t, target.AddVote(v))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetFeed
// ──────────────────────────────────────────────────────────────────────────────

func TestGetFeed_Social(t *testing.T) {
	env := newQueryEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	alice.Follow(bob)

	env.question(t, bob, "Вопрос про Go", 3, 1)
	env.question(t, env.voters[0], "Чужой вопрос", 5, 0)

	handler := NewGetFeedHandler(env.store.Users(), env.feeds)
	res, err := handler.Handle(context.Background(), GetFeedQuery{
		Username: "alice",
		Kind:     feed.KindSocial,
	})
	require.NoError(t, err)

	assert.Equal(t, feed.KindSocial, res.Kind)
	assert.Equal(t, "alice", res.Username)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "Вопрос про Go", res.Questions[0].Title)
	assert.Equal(t, "bob", res.Questions[0].Author)
	assert.Equal(t, 3, res.Questions[0].PositiveVotes)
	assert.Equal(t, 1, res.Questions[0].NegativeVotes)
	assert.Equal(t, 3, res.TotalVotes)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestGetFeed_AscendingOrderAndTotal(t *testing.T) {
	env := newQueryEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	alice.Follow(bob)

	env.question(t, bob, "высокий", 4, 0)
	env.question(t, bob, "низкий", 1, 0)

	handler := NewGetFeedHandler(env.store.Users(), env.feeds)
	res, err := handler.Handle(context.Background(), GetFeedQuery{
		Username: "alice",
		Kind:     feed.KindSocial,
	})
	require.NoError(t, err)

	require.Len(t, res.Questions, 2)
	assert.Equal(t, "низкий", res.Questions[0].Title)
	assert.Equal(t, "высокий", res.Questions[1].Title)
	assert.Equal(t, 5, res.TotalVotes)
}

func TestGetFeed_UnknownUser(t *testing.T) {
	env := newQueryEnv(t)

	handler := NewGetFeedHandler(env.store.Users(), env.feeds)
	_, err := handler.Handle(context.Background(), GetFeedQuery{
		Username: "ghost",
		Kind:     feed.KindSocial,
	})
	assert.True(t, shared.IsNotFound(err))
}

func TestGetFeed_InvalidKind(t *testing.T) {
	env := newQueryEnv(t)
	env.user(t, "alice")

	handler := NewGetFeedHandler(env.store.Users(), env.feeds)
	_, err := handler.Handle(context.Background(), GetFeedQuery{
		Username: "alice",
		Kind:     feed.Kind("trending"),
	})
	assert.True(t, shared.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetUserScore
// ──────────────────────────────────────────────────────────────────────────────

func TestGetUserScore(t *testing.T) {
	env := newQueryEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	// Вопрос и ответ в плюсе, второй вопрос без большинства
	scored := env.question(t, alice, "в плюсе", 3, 1)
	env.question(t, alice, "спорный", 2, 2)
	env.answer(t, alice, scored, "ответ Алисы", 2, 0)
	_ = bob

	handler := NewGetUserScoreHandler(env.store.Users())
	res, err := handler.Handle(context.Background(), GetUserScoreQuery{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, 10+20, res.Score)
	assert.Equal(t, 2, res.QuestionCount)
	assert.Equal(t, 1, res.AnswerCount)
	assert.Equal(t, 1, res.ScoringQuestions)
	assert.Equal(t, 1, res.ScoringAnswers)
}

func TestGetUserScore_CustomPoints(t *testing.T) {
	env := newQueryEnv(t)
	alice := env.user(t, "alice")
	env.question(t, alice, "в плюсе", 1, 0)

	handler := NewGetUserScoreHandler(env.store.Users())
	res, err := handler.Handle(context.Background(), GetUserScoreQuery{
		Username:       "alice",
		QuestionPoints: 7,
		AnswerPoints:   13,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Score)
}

func TestGetUserScore_NegativePointsRejected(t *testing.T) {
	env := newQueryEnv(t)
	env.user(t, "alice")

	handler := NewGetUserScoreHandler(env.store.Users())
	_, err := handler.Handle(context.Background(), GetUserScoreQuery{
		Username:       "alice",
		QuestionPoints: -1,
	})
	assert.True(t, shared.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetBestAnswer
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBestAnswer(t *testing.T) {
	env := newQueryEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	q := env.question(t, alice, "Вопрос", 0, 0)
	env.answer(t, bob, q, "слабый ответ", 1, 1)
	best := env.answer(t, bob, q, "сильный ответ", 4, 1)

	handler := NewGetBestAnswerHandler(env.store.Questions())
	res, err := handler.Handle(context.Background(), GetBestAnswerQuery{QuestionID: q.ID()})
	require.NoError(t, err)

	assert.True(t, res.HasAnswers)
	assert.Equal(t, 2, res.AnswerCount)
	require.NotNil(t, res.Best)
	assert.Equal(t, best.ID(), res.Best.AnswerID)
	assert.Equal(t, "сильный ответ", res.Best.Text)
	assert.Equal(t, "bob", res.Best.Author)
	assert.Equal(t, 3, res.Best.NetScore)
	assert.Equal(t, 4, res.Best.PositiveVotes)
	assert.Equal(t, 1, res.Best.NegativeVotes)
}

func TestGetBestAnswer_NoAnswers(t *testing.T) {
	env := newQueryEnv(t)
	alice := env.user(t, "alice")
	q := env.question(t, alice, "Вопрос без ответов", 0, 0)

	handler := NewGetBestAnswerHandler(env.store.Questions())
	res, err := handler.Handle(context.Background(), GetBestAnswerQuery{QuestionID: q.ID()})
	require.NoError(t, err)

	assert.False(t, res.HasAnswers)
	assert.Nil(t, res.Best)
	assert.Zero(t, res.AnswerCount)
}

func TestGetBestAnswer_UnknownQuestion(t *testing.T) {
	env := newQueryEnv(t)

	handler := NewGetBestAnswerHandler(env.store.Questions())
	_, err := handler.Handle(context.Background(), GetBestAnswerQuery{QuestionID: "missing"})
	assert.True(t, shared.IsNotFound(err))
}
