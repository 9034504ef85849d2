package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cuoora-core", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, 100, cfg.Feed.Limit)
	assert.Equal(t, 10, cfg.Scoring.QuestionPoints)
	assert.Equal(t, 20, cfg.Scoring.AnswerPoints)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.NotNil(t, cfg.Features)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_NAME", "cuoora")
	t.Setenv("FEED_LIMIT", "25")
	t.Setenv("SCORING_QUESTION_POINTS", "5")
	t.Setenv("SCORING_ANSWER_POINTS", "15")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cuoora", cfg.App.Name)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 25, cfg.Feed.Limit)
	assert.Equal(t, 5, cfg.Scoring.QuestionPoints)
	assert.Equal(t, 15, cfg.Scoring.AnswerPoints)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
}

func TestLoad_InvalidFeedLimit(t *testing.T) {
	t.Setenv("FEED_LIMIT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEED_LIMIT")
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("FEED_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Feed.Limit)
}

func TestLoad_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.App.Location.String())
}

func TestFeatureFlags_DefaultsEnabled(t *testing.T) {
	ff := LoadFeatureFlags()
	ctx := &FeatureContext{Username: "alice"}

	for _, name := range []string{
		FeatureFeedSocial,
		FeatureFeedTopics,
		FeatureFeedNews,
		FeatureFeedPopularToday,
		FeatureContentBestAnswer,
		FeatureContentVisibility,
		FeatureContentDownvotes,
		FeatureScoringReputation,
	} {
		assert.True(t, ff.IsEnabled(name, ctx), name)
	}
	assert.True(t, ff.AnyFeedEnabled(ctx))
	assert.False(t, ff.IsEnabled("feed.unknown", ctx))
}

func TestFeatureFlags_EnvOverride(t *testing.T) {
	t.Setenv("FEATURE_FEED_POPULAR_TODAY", "false")

	ff := LoadFeatureFlags()
	ctx := &FeatureContext{Username: "alice"}

	assert.False(t, ff.IsEnabled(FeatureFeedPopularToday, ctx))
	assert.False(t, ff.FeedKindEnabled("popular_today", ctx))
	assert.True(t, ff.FeedKindEnabled("social", ctx))
}

func TestFeatureFlags_RolloutPercent(t *testing.T) {
	ff := LoadFeatureFlags()
	require.NoError(t, ff.SetRolloutPercent(FeatureContentDownvotes, 50))

	// Бакет пользователя стабилен между вызовами
	ctx := &FeatureContext{Username: "alice"}
	first := ff.IsEnabled(FeatureContentDownvotes, ctx)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ff.IsEnabled(FeatureContentDownvotes, ctx))
	}

	require.NoError(t, ff.SetRolloutPercent(FeatureContentDownvotes, 0))
	assert.False(t, ff.IsEnabled(FeatureContentDownvotes, ctx))

	require.NoError(t, ff.SetRolloutPercent(FeatureContentDownvotes, 100))
	assert.True(t, ff.IsEnabled(FeatureContentDownvotes, ctx))

	assert.ErrorIs(t, ff.SetRolloutPercent(FeatureContentDownvotes, 101), ErrInvalidRolloutPercent)
	assert.ErrorIs(t, ff.SetRolloutPercent("no.such.flag", 50), ErrFeatureNotFound)
}

func TestFeatureFlags_UserOverride(t *testing.T) {
	ff := LoadFeatureFlags()
	require.NoError(t, ff.DisableFeature(FeatureFeedNews))

	ctx := &FeatureContext{Username: "alice"}
	assert.False(t, ff.IsEnabled(FeatureFeedNews, ctx))

	ff.SetUserOverride("alice", FeatureFeedNews, true)
	assert.True(t, ff.IsEnabled(FeatureFeedNews, ctx))
	assert.False(t, ff.IsEnabled(FeatureFeedNews, &FeatureContext{Username: "bob"}))

	ff.ClearUserOverrides("alice")
	assert.False(t, ff.IsEnabled(FeatureFeedNews, ctx))
}

func TestFeatureFlags_AdminGetsEverything(t *testing.T) {
	ff := LoadFeatureFlags()
	require.NoError(t, ff.DisableFeature(FeatureContentDownvotes))

	admin := &FeatureContext{Username: "root", IsAdmin: true}
	assert.True(t, ff.IsEnabled(FeatureContentDownvotes, admin))
}

func TestFeatureFlags_GetAllFeaturesReturnsCopies(t *testing.T) {
	ff := LoadFeatureFlags()

	all := ff.GetAllFeatures()
	require.Contains(t, all, FeatureFeedSocial)
	all[FeatureFeedSocial].Enabled = false

	assert.True(t, ff.IsEnabled(FeatureFeedSocial, &FeatureContext{Username: "alice"}))
}
