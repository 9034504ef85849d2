// Package main - демонстрационный запуск ядра CuOOra.
//
// Сценарий повторяет типичный день платформы: регистрирует
// пользователей, создаёт темы и вопросы, собирает ответы и голоса,
// после чего строит все четыре ленты для одного пользователя
// и печатает результаты в структурированный лог.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cuoora/cuoora-core/config"
	"github.com/cuoora/cuoora-core/internal/application/command"
	"github.com/cuoora/cuoora-core/internal/application/query"
	"github.com/cuoora/cuoora-core/internal/domain/feed"
	"github.com/cuoora/cuoora-core/internal/domain/qa"
	"github.com/cuoora/cuoora-core/internal/infrastructure/memory"
	"github.com/cuoora/cuoora-core/pkg/logger"
	"github.com/cuoora/cuoora-core/pkg/timeutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Границы "сегодня" для лент новых и популярных вопросов
	// режутся в настроенной таймзоне
	timeutil.SetPlatformTZ(cfg.App.Location)

	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.Observability.LogCaller,
	}).With(logger.Component("demo"))

	log.Info("starting cuoora core demo",
		logger.String("env", string(cfg.App.Environment)),
		logger.Int("feed_limit", cfg.Feed.Limit),
	)

	ctx := context.Background()
	store := memory.NewStore()
	feeds := feed.NewService(feed.ServiceParams{Limit: cfg.Feed.Limit})

	registerUser := command.NewRegisterUserHandler(store.Users())
	postQuestion := command.NewPostQuestionHandler(store.Users(), store.Topics(), store.Questions(), feeds)
	postAnswer := command.NewPostAnswerHandler(store.Users(), store.Questions(), store.Answers())
	castVote := command.NewCastVoteHandler(store.Users(), store.Votables())
	followUser := command.NewFollowUserHandler(store.Users())
	attachTopic := command.NewAttachTopicHandler(store.Users(), store.Topics(), store.Questions())

	getFeed := query.NewGetFeedHandler(store.Users(), feeds)
	getScore := query.NewGetUserScoreHandler(store.Users())
	getBestAnswer := query.NewGetBestAnswerHandler(store.Questions())

	// ── Сообщество ───────────────────────────────────────────────────────────

	usernames := []string{"alice", "bob", "carol", "dave"}
	userIDs := make(map[string]string, len(usernames))
	for _, name := range usernames {
		res, err := registerUser.Handle(ctx, command.RegisterUserCommand{
			Username: name,
			Password: name + "-secret",
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
		userIDs[name] = res.UserID
		log.Info("registered user", logger.Username(name), logger.UserID(res.UserID))
	}

	// alice читает bob и carol
	for _, target := range []string{"bob", "carol"} {
		if _, err := followUser.Handle(ctx, command.FollowUserCommand{
			FollowerID: userIDs["alice"],
			TargetID:   userIDs[target],
		}); err != nil {
			return fmt.Errorf("follow %s: %w", target, err)
		}
	}

	topics := map[string]string{}
	for name, description := range map[string]string{
		"golang":    "Вопросы о языке Go",
		"databases": "Хранилища данных и запросы",
	} {
		topic, err := newTopic(ctx, store, name, description)
		if err != nil {
			return err
		}
		topics[name] = topic
	}

	// alice интересуется базами данных
	if _, err := attachTopic.Handle(ctx, command.AttachTopicCommand{
		TopicID: topics["databases"],
		UserID:  userIDs["alice"],
	}); err != nil {
		return fmt.Errorf("add interest: %w", err)
	}

	// ── Контент ──────────────────────────────────────────────────────────────

	type seedQuestion struct {
		author string
		title  string
		body   string
		topic  string
	}

	seeds := []seedQuestion{
		{"bob", "Как устроен планировщик горутин?", "Интересует порядок запуска.", "golang"},
		{"carol", "Когда выбирать денормализацию?", "Сервис читает чаще, чем пишет.", "databases"},
		{"dave", "Как профилировать аллокации?", "pprof показывает только CPU.", "golang"},
		{"alice", "Индексы по выражению: когда оправданы?", "Часто фильтрую по lower(email).", "databases"},
	}

	questionIDs := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		res, err := postQuestion.Handle(ctx, command.PostQuestionCommand{
			AuthorID:    userIDs[seed.author],
			Title:       seed.title,
			Description: seed.body,
			TopicIDs:    []string{topics[seed.topic]},
		})
		if err != nil {
			return fmt.Errorf("post question: %w", err)
		}
		questionIDs = append(questionIDs, res.QuestionID)
		log.Info("posted question",
			logger.QuestionID(res.QuestionID),
			logger.Username(seed.author),
			logger.TopicName(seed.topic),
		)
	}

	answer, err := postAnswer.Handle(ctx, command.PostAnswerCommand{
		AuthorID:   userIDs["dave"],
		QuestionID: questionIDs[0],
		Text:       "Планировщик раздаёт горутины по P, очереди воруются.",
	})
	if err != nil {
		return fmt.Errorf("post answer: %w", err)
	}

	// Голоса распределяются так, чтобы ленты были различимы
	votes := []struct {
		voter    string
		targetID string
		positive bool
	}{
		{"alice", questionIDs[0], true},
		{"carol", questionIDs[0], true},
		{"dave", questionIDs[1], true},
		{"bob", questionIDs[1], true},
		{"alice", questionIDs[2], true},
		{"bob", questionIDs[3], false},
		{"alice", answer.AnswerID, true},
	}
	for _, v := range votes {
		if _, err := castVote.Handle(ctx, command.CastVoteCommand{
			VoterID:  userIDs[v.voter],
			TargetID: v.targetID,
			Positive: v.positive,
		}); err != nil {
			return fmt.Errorf("cast vote: %w", err)
		}
	}

	// ── Ленты и счёт ─────────────────────────────────────────────────────────

	for _, kind := range feed.AllKinds() {
		res, err := getFeed.Handle(ctx, query.GetFeedQuery{
			Username: "alice",
			Kind:     kind,
		})
		if err != nil {
			return fmt.Errorf("feed %s: %w", kind, err)
		}

		log.Info("feed built",
			logger.FeedKind(kind.String()),
			logger.Username("alice"),
			logger.Int("questions", len(res.Questions)),
			logger.VoteCount(res.TotalVotes),
		)
		for _, q := range res.Questions {
			log.Info("feed entry",
				logger.FeedKind(kind.String()),
				logger.QuestionID(q.QuestionID),
				logger.String("title", q.Title),
				logger.Username(q.Author),
				logger.Int("positive", q.PositiveVotes),
			)
		}
	}

	best, err := getBestAnswer.Handle(ctx, query.GetBestAnswerQuery{QuestionID: questionIDs[0]})
	if err != nil {
		return fmt.Errorf("best answer: %w", err)
	}
	if best.Best != nil {
		log.Info("best answer",
			logger.QuestionID(best.QuestionID),
			logger.AnswerID(best.Best.AnswerID),
			logger.Username(best.Best.Author),
			logger.Int("net_score", best.Best.NetScore),
		)
	}

	for _, name := range usernames {
		score, err := getScore.Handle(ctx, query.GetUserScoreQuery{
			Username:       name,
			QuestionPoints: cfg.Scoring.QuestionPoints,
			AnswerPoints:   cfg.Scoring.AnswerPoints,
		})
		if err != nil {
			return fmt.Errorf("score %s: %w", name, err)
		}
		log.Info("user score",
			logger.Username(name),
			logger.Score(score.Score),
			logger.Int("scoring_questions", score.ScoringQuestions),
			logger.Int("scoring_answers", score.ScoringAnswers),
		)
	}

	log.Info("demo finished")
	return nil
}

// newTopic создаёт и сохраняет тему, возвращая её ID.
func newTopic(ctx context.Context, store *memory.Store, name, description string) (string, error) {
	topic, err := qa.NewTopic(name, description)
	if err != nil {
		return "", fmt.Errorf("create topic %s: %w", name, err)
	}
	if err := store.SaveTopic(ctx, topic); err != nil {
		return "", fmt.Errorf("save topic %s: %w", name, err)
	}
	return topic.ID(), nil
}
