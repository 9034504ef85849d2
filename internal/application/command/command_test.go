package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuoora/cuoora-core/internal/domain/feed"
	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
	"github.com/cuoora/cuoora-core/internal/infrastructure/memory"
)

type commandEnv struct {
	store *memory.Store
	feeds *feed.Service

	registerUser *RegisterUserHandler
	postQuestion *PostQuestionHandler
	postAnswer   *PostAnswerHandler
	castVote     *CastVoteHandler
	followUser   *FollowUserHandler
	attachTopic  *AttachTopicHandler
}

func newCommandEnv() *commandEnv {
	store := memory.NewStore()
	feeds := feed.NewService(feed.ServiceParams{})

	return &commandEnv{
		store:        store,
		feeds:        feeds,
		registerUser: NewRegisterUserHandler(store.Users()),
		postQuestion: NewPostQuestionHandler(store.Users(), store.Topics(), store.Questions(), feeds),
		postAnswer:   NewPostAnswerHandler(store.Users(), store.Questions(), store.Answers()),
		castVote:     NewCastVoteHandler(store.Users(), store.Votables()),
		followUser:   NewFollowUserHandler(store.Users()),
		attachTopic:  NewAttachTopicHandler(store.Users(), store.Topics(), store.Questions()),
	}
}

func (e *commandEnv) mustRegister(t *testing.T, username string) string {
	t.Helper()
	res, err := e.registerUser.Handle(context.Background(), RegisterUserCommand{
		Username: username,
		Password: "password",
	})
	require.NoError(t, err)
	return res.UserID
}

func (e *commandEnv) mustTopic(t *testing.T, name string) string {
	t.Helper()
	topic, err := qa.NewTopic(name, "")
	require.NoError(t, err)
	require.NoError(t, e.store.SaveTopic(context.Background(), topic))
	return topic.ID()
}

func (e *commandEnv) mustQuestion(t *testing.T, authorID, title string, topicIDs ...string) string {
	t.Helper()
	res, err := e.postQuestion.Handle(context.Background(), PostQuestionCommand{
		AuthorID: authorID,
		Title:    title,
		TopicIDs: topicIDs,
	})
	require.NoError(t, err)
	return res.QuestionID
}

func TestRegisterUser(t *testing.T) {
	env := newCommandEnv()

	res, err := env.registerUser.Handle(context.Background(), RegisterUserCommand{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.UserID)
	assert.Equal(t, "alice", res.Username)

	saved, err := env.store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, saved.CheckPassword("s3cret"))
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	env := newCommandEnv()
	env.mustRegister(t, "alice")

	_, err := env.registerUser.Handle(context.Background(), RegisterUserCommand{
		Username: "alice",
		Password: "other",
	})
	assert.ErrorIs(t, err, shared.ErrUserExists)
}

func TestRegisterUser_Validation(t *testing.T) {
	env := newCommandEnv()

	_, err := env.registerUser.Handle(context.Background(), RegisterUserCommand{Username: "alice"})
	assert.Error(t, err)

	_, err = env.registerUser.Handle(context.Background(), RegisterUserCommand{Password: "pw"})
	assert.Error(t, err)
}

func TestPostQuestion(t *testing.T) {
	env := newCommandEnv()
	authorID := env.mustRegister(t, "bob")
	topicID := env.mustTopic(t, "go")

	res, err := env.postQuestion.Handle(context.Background(), PostQuestionCommand{
		AuthorID:    authorID,
		Title:       "Как работает defer?",
		Description: "Порядок выполнения при панике.",
		TopicIDs:    []string{topicID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TopicCount)

	// Вопрос попадает и в хранилище, и в пул лент
	saved, err := env.store.GetQuestionByID(context.Background(), res.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, "Как работает defer?", saved.Title())
	assert.Len(t, env.feeds.Questions(), 1)
}

func TestPostQuestion_UnknownAuthor(t *testing.T) {
	env := newCommandEnv()

	_, err := env.postQuestion.Handle(context.Background(), PostQuestionCommand{
		AuthorID: "missing",
		Title:    "Вопрос",
	})
	assert.True(t, shared.IsNotFound(err))
}

func TestPostQuestion_DuplicateTopicRejectsWhole(t *testing.T) {
	env := newCommandEnv()
	authorID := env.mustRegister(t, "bob")
	topicID := env.mustTopic(t, "go")

	_, err := env.postQuestion.Handle(context.Background(), PostQuestionCommand{
		AuthorID: authorID,
		Title:    "Вопрос",
		TopicIDs: []string{topicID, topicID},
	})
	assert.ErrorIs(t, err, shared.ErrDuplicateTopic)

	count, err := env.store.CountQuestions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, env.feeds.Questions())
}

func TestPostAnswer(t *testing.T) {
	env := newCommandEnv()
	askerID := env.mustRegister(t, "alice")
	answererID := env.mustRegister(t, "bob")
	questionID := env.mustQuestion(t, askerID, "Вопрос")

	res, err := env.postAnswer.Handle(context.Background(), PostAnswerCommand{
		AuthorID:   answererID,
		QuestionID: questionID,
		Text:       "Ответ",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.AnswerCount)

	question, err := env.store.GetQuestionByID(context.Background(), questionID)
	require.NoError(t, err)
	require.Len(t, question.Answers(), 1)
	assert.Equal(t, "Ответ", question.Answers()[0].Text())
}

func TestCastVote_OnQuestionAndAnswer(t *testing.T) {
	env := newCommandEnv()
	askerID := env.mustRegister(t, "alice")
	voterID := env.mustRegister(t, "bob")
	questionID := env.mustQuestion(t, askerID, "Вопрос")

	answerRes, err := env.postAnswer.Handle(context.Background(), PostAnswerCommand{
		AuthorID:   askerID,
		QuestionID: questionID,
		Text:       "Ответ",
	})
	require.NoError(t, err)

	qVote, err := env.castVote.Handle(context.Background(), CastVoteCommand{
		VoterID:  voterID,
		TargetID: questionID,
		Positive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, qVote.PositiveCount)

	aVote, err := env.castVote.Handle(context.Background(), CastVoteCommand{
		VoterID:  voterID,
		TargetID: answerRes.AnswerID,
		Positive: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, aVote.NegativeCount)
}

func TestCastVote_DuplicateRejected(t *testing.T) {
	env := newCommandEnv()
	askerID := env.mustRegister(t, "alice")
	voterID := env.mustRegister(t, "bob")
	questionID := env.mustQuestion(t, askerID, "Вопрос")

	_, err := env.castVote.Handle(context.Background(), CastVoteCommand{
		VoterID:  voterID,
		TargetID: questionID,
		Positive: true,
	})
	require.NoError(t, err)

	_, err = env.castVote.Handle(context.Background(), CastVoteCommand{
		VoterID:  voterID,
		TargetID: questionID,
		Positive: false,
	})
	assert.ErrorIs(t, err, shared.ErrDuplicateVote)

	// Первый голос остаётся как есть
	question, err := env.store.GetQuestionByID(context.Background(), questionID)
	require.NoError(t, err)
	assert.Len(t, question.PositiveVotes(), 1)
	assert.Empty(t, question.NegativeVotes())
}

func TestCastVote_UnknownTarget(t *testing.T) {
	env := newCommandEnv()
	voterID := env.mustRegister(t, "bob")

	_, err := env.castVote.Handle(context.Background(), CastVoteCommand{
		VoterID:  voterID,
		TargetID: "missing",
		Positive: true,
	})
	assert.ErrorIs(t, err, shared.ErrVotableNotFound)
}

func TestFollowUser_AndUnfollow(t *testing.T) {
	env := newCommandEnv()
	aliceID := env.mustRegister(t, "alice")
	bobID := env.mustRegister(t, "bob")

	res, err := env.followUser.Handle(context.Background(), FollowUserCommand{
		FollowerID: aliceID,
		TargetID:   bobID,
	})
	require.NoError(t, err)
	assert.True(t, res.Following)
	assert.Equal(t, 1, res.FollowingCount)

	// Повторная подписка идемпотентна
	res, err = env.followUser.Handle(context.Background(), FollowUserCommand{
		FollowerID: aliceID,
		TargetID:   bobID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FollowingCount)

	res, err = env.followUser.Handle(context.Background(), FollowUserCommand{
		FollowerID: aliceID,
		TargetID:   bobID,
		Unfollow:   true,
	})
	require.NoError(t, err)
	assert.False(t, res.Following)
	assert.Zero(t, res.FollowingCount)
}

func TestAttachTopic_ToQuestion(t *testing.T) {
	env := newCommandEnv()
	authorID := env.mustRegister(t, "bob")
	questionID := env.mustQuestion(t, authorID, "Вопрос")
	topicID := env.mustTopic(t, "go")

	res, err := env.attachTopic.Handle(context.Background(), AttachTopicCommand{
		TopicID:    topicID,
		QuestionID: questionID,
	})
	require.NoError(t, err)
	assert.Equal(t, "go", res.TopicName)
	assert.Equal(t, 1, res.TopicCount)

	// Вторая привязка той же темы отклоняется
	_, err = env.attachTopic.Handle(context.Background(), AttachTopicCommand{
		TopicID:    topicID,
		QuestionID: questionID,
	})
	assert.ErrorIs(t, err, shared.ErrDuplicateTopic)
}

func TestAttachTopic_ToUserInterests(t *testing.T) {
	env := newCommandEnv()
	userID := env.mustRegister(t, "alice")
	topicID := env.mustTopic(t, "databases")

	res, err := env.attachTopic.Handle(context.Background(), AttachTopicCommand{
		TopicID: topicID,
		UserID:  userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TopicCount)

	// Повторное добавление интереса молча игнорируется
	res, err = env.attachTopic.Handle(context.Background(), AttachTopicCommand{
		TopicID: topicID,
		UserID:  userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TopicCount)
}

func TestAttachTopic_Validation(t *testing.T) {
	env := newCommandEnv()
	topicID := env.mustTopic(t, "go")

	_, err := env.attachTopic.Handle(context.Background(), AttachTopicCommand{TopicID: topicID})
	assert.Error(t, err)

	_, err = env.attachTopic.Handle(context.Background(), AttachTopicCommand{
		TopicID:    topicID,
		QuestionID: "q",
		UserID:     "u",
	})
	assert.Error(t, err)
}
