package memory

import (
	"context"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY VIEWS
// The repository interfaces share method names (Save, GetByID), so one
// Store cannot implement them all directly. Each view borrows the
// store's lock through the forwarded call; entities of one graph stay
// under one mutex.
// ══════════════════════════════════════════════════════════════════════════════

// Users returns the store's qa.UserRepository view.
func (s *Store) Users() qa.UserRepository {
	return &userRepository{s}
}

// Questions returns the store's qa.QuestionRepository view.
func (s *Store) Questions() qa.QuestionRepository {
	return &questionRepository{s}
}

// Answers returns the store's qa.AnswerRepository view.
func (s *Store) Answers() qa.AnswerRepository {
	return &answerRepository{s}
}

// Topics returns the store's qa.TopicRepository view.
func (s *Store) Topics() qa.TopicRepository {
	return &topicRepository{s}
}

// Votables returns the store's qa.VotableRepository view.
func (s *Store) Votables() qa.VotableRepository {
	return &votableRepository{s}
}

type userRepository struct{ s *Store }

func (r *userRepository) Save(ctx context.Context, u *qa.User) error {
	return r.s.SaveUser(ctx, u)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*qa.User, error) {
	return r.s.GetUserByID(ctx, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*qa.User, error) {
	return r.s.GetUserByUsername(ctx, username)
}

func (r *userRepository) GetAll(ctx context.Context) ([]*qa.User, error) {
	return r.s.GetAllUsers(ctx)
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	return r.s.CountUsers(ctx)
}

type questionRepository struct{ s *Store }

func (r *questionRepository) Save(ctx context.Context, q *qa.Question) error {
	return r.s.SaveQuestion(ctx, q)
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*qa.Question, error) {
	return r.s.GetQuestionByID(ctx, id)
}

func (r *questionRepository) GetAll(ctx context.Context) ([]*qa.Question, error) {
	return r.s.GetAllQuestions(ctx)
}

func (r *questionRepository) Count(ctx context.Context) (int, error) {
	return r.s.CountQuestions(ctx)
}

type answerRepository struct{ s *Store }

func (r *answerRepository) Save(ctx context.Context, a *qa.Answer) error {
	return r.s.SaveAnswer(ctx, a)
}

func (r *answerRepository) GetByID(ctx context.Context, id string) (*qa.Answer, error) {
	return r.s.GetAnswerByID(ctx, id)
}

type topicRepository struct{ s *Store }

func (r *topicRepository) Save(ctx context.Context, t *qa.Topic) error {
	return r.s.SaveTopic(ctx, t)
}

func (r *topicRepository) GetByID(ctx context.Context, id string) (*qa.Topic, error) {
	return r.s.GetTopicByID(ctx, id)
}

func (r *topicRepository) GetByName(ctx context.Context, name string) (*qa.Topic, error) {
	return r.s.GetTopicByName(ctx, name)
}

func (r *topicRepository) GetAll(ctx context.Context) ([]*qa.Topic, error) {
	return r.s.GetAllTopics(ctx)
}

type votableRepository struct{ s *Store }

func (r *votableRepository) GetVotable(ctx context.Context, id string) (qa.Votable, error) {
	return r.s.GetVotable(ctx, id)
}

// Interface conformance checks.
var (
	_ qa.UserRepository     = (*userRepository)(nil)
	_ qa.QuestionRepository = (*questionRepository)(nil)
	_ qa.AnswerRepository   = (*answerRepository)(nil)
	_ qa.TopicRepository    = (*topicRepository)(nil)
	_ qa.VotableRepository  = (*votableRepository)(nil)
)
