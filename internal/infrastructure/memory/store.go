// Package memory provides an in-memory implementation of the qa
// repositories. A single RWMutex guards the whole entity graph:
// best-answer and score reads recompute from live vote state, so a
// reader must never interleave with a mutation of the entities it
// traverses.
package memory

import (
	"context"
	"sync"

	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/domain/shared"
)

// Store keeps all entities in maps with insertion-order slices
// alongside, so listing operations are deterministic.
type Store struct {
	mu sync.RWMutex

	users     map[string]*qa.User
	userOrder []string
	usernames map[string]string // username -> user ID

	questions     map[string]*qa.Question
	questionOrder []string

	answers map[string]*qa.Answer

	topics     map[string]*qa.Topic
	topicOrder []string
	topicNames map[string]string // topic name -> topic ID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*qa.User),
		userOrder: make([]string, 0),
		usernames: make(map[string]string),

		questions:     make(map[string]*qa.Question),
		questionOrder: make([]string, 0),

		answers: make(map[string]*qa.Answer),

		topics:     make(map[string]*qa.Topic),
		topicOrder: make([]string, 0),
		topicNames: make(map[string]string),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// UserRepository
// ─────────────────────────────────────────────────────────────────────────────

// SaveUser stores a new user. The username must be free.
func (s *Store) SaveUser(ctx context.Context, u *qa.User) error {
	if u == nil {
		return shared.NewDomainError("memory", "SaveUser", shared.ErrInvalidInput, "user is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID()]; ok {
		return shared.NewDomainError("memory", "SaveUser", shared.ErrUserExists, "user already saved")
	}
	if _, ok := s.usernames[u.Username()]; ok {
		return shared.NewDomainError("memory", "SaveUser", shared.ErrUserExists,
			"username "+u.Username()+" is already taken")
	}

	s.users[u.ID()] = u
	s.userOrder = append(s.userOrder, u.ID())
	s.usernames[u.Username()] = u.ID()
	return nil
}

// GetUserByID returns a user by ID.
func (s *Store) GetUserByID(ctx context.Context, id string) (*qa.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, shared.NewDomainError("memory", "GetUserByID", shared.ErrUserNotFound, "user "+id+" not found")
	}
	return u, nil
}

// GetUserByUsername returns a user by login name.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*qa.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, shared.NewDomainError("memory", "GetUserByUsername", shared.ErrUserNotFound,
			"user "+username+" not found")
	}
	return s.users[id], nil
}

// GetAllUsers returns all users in registration order.
func (s *Store) GetAllUsers(ctx context.Context) ([]*qa.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*qa.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out, nil
}

// CountUsers returns the number of users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// QuestionRepository
// ─────────────────────────────────────────────────────────────────────────────

// SaveQuestion stores a new question.
func (s *Store) SaveQuestion(ctx context.Context, q *qa.Question) error {
	if q == nil {
		return shared.NewDomainError("memory", "SaveQuestion", shared.ErrInvalidInput, "question is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[q.ID()]; ok {
		return shared.NewDomainError("memory", "SaveQuestion", shared.ErrAlreadyExists, "question already saved")
	}

	s.questions[q.ID()] = q
	s.questionOrder = append(s.questionOrder, q.ID())
	return nil
}

// GetQuestionByID returns a question by ID.
func (s *Store) GetQuestionByID(ctx context.Context, id string) (*qa.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, shared.NewDomainError("memory", "GetQuestionByID", shared.ErrQuestionNotFound,
			"question "+id+" not found")
	}
	return q, nil
}

// GetAllQuestions returns all questions in creation order.
func (s *Store) GetAllQuestions(ctx context.Context) ([]*qa.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*qa.Question, 0, len(s.questionOrder))
	for _, id := range s.questionOrder {
		out = append(out, s.questions[id])
	}
	return out, nil
}

// CountQuestions returns the number of questions.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// AnswerRepository
// ─────────────────────────────────────────────────────────────────────────────

// SaveAnswer stores a new answer.
func (s *Store) SaveAnswer(ctx context.Context, a *qa.Answer) error {
	if a == nil {
		return shared.NewDomainError("memory", "SaveAnswer", shared.ErrInvalidInput, "answer is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.answers[a.ID()]; ok {
		return shared.NewDomainError("memory", "SaveAnswer", shared.ErrAlreadyExists, "answer already saved")
	}

	s.answers[a.ID()] = a
	return nil
}

// GetAnswerByID returns an answer by ID.
func (s *Store) GetAnswerByID(ctx context.Context, id string) (*qa.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.answers[id]
	if !ok {
		return nil, shared.NewDomainError("memory", "GetAnswerByID", shared.ErrAnswerNotFound,
			"answer "+id+" not found")
	}
	return a, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// TopicRepository
// ─────────────────────────────────────────────────────────────────────────────

// SaveTopic stores a new topic. The topic name must be free.
func (s *Store) SaveTopic(ctx context.Context, t *qa.Topic) error {
	if t == nil {
		return shared.NewDomainError("memory", "SaveTopic", shared.ErrInvalidInput, "topic is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[t.ID()]; ok {
		return shared.NewDomainError("memory", "SaveTopic", shared.ErrAlreadyExists, "topic already saved")
	}
	if _, ok := s.topicNames[t.Name()]; ok {
		return shared.NewDomainError("memory", "SaveTopic", shared.ErrAlreadyExists,
			"topic "+t.Name()+" already exists")
	}

	s.topics[t.ID()] = t
	s.topicOrder = append(s.topicOrder, t.ID())
	s.topicNames[t.Name()] = t.ID()
	return nil
}

// GetTopicByID returns a topic by ID.
func (s *Store) GetTopicByID(ctx context.Context, id string) (*qa.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.topics[id]
	if !ok {
		return nil, shared.NewDomainError("memory", "GetTopicByID", shared.ErrTopicNotFound,
			"topic "+id+" not found")
	}
	return t, nil
}

// GetTopicByName returns a topic by name.
func (s *Store) GetTopicByName(ctx context.Context, name string) (*qa.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.topicNames[name]
	if !ok {
		return nil, shared.NewDomainError("memory", "GetTopicByName", shared.ErrTopicNotFound,
			"topic "+name+" not found")
	}
	return s.topics[id], nil
}

// GetAllTopics returns all topics in creation order.
func (s *Store) GetAllTopics(ctx context.Context) ([]*qa.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*qa.Topic, 0, len(s.topicOrder))
	for _, id := range s.topicOrder {
		out = append(out, s.topics[id])
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// VotableRepository
// ─────────────────────────────────────────────────────────────────────────────

// GetVotable returns the question or answer with the given ID.
func (s *Store) GetVotable(ctx context.Context, id string) (qa.Votable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if q, ok := s.questions[id]; ok {
		return q, nil
	}
	if a, ok := s.answers[id]; ok {
		return a, nil
	}
	return nil, shared.NewDomainError("memory", "GetVotable", shared.ErrVotableNotFound,
		"no question or answer with id "+id)
}
