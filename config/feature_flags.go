package config

import (
	"hash/fnv"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FeatureFlags manages feature toggles and gradual rollout.
// Feed strategies can be rolled out per-user: a user is assigned
// to a bucket by a consistent hash of their username, so a user
// stays on the same side of an experiment between sessions.
type FeatureFlags struct {
	mu sync.RWMutex

	// Core features
	features map[string]*Feature

	// Override rules (for testing/debugging)
	userOverrides map[string]map[string]bool // username -> feature -> enabled
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool

	// Rollout percentage (0-100)
	// Users are assigned based on hash of their username
	RolloutPercent int

	// Time-based activation
	EnabledFrom  *time.Time
	EnabledUntil *time.Time
}

// FeatureContext provides context for feature flag evaluation.
type FeatureContext struct {
	Username string // platform username
	IsAdmin  bool   // admins get all features
}

// Predefined feature flag names.
const (
	// === Feed Features ===
	FeatureFeedSocial       = "feed.social"        // questions from followed users
	FeatureFeedTopics       = "feed.topics"        // questions from interesting topics
	FeatureFeedNews         = "feed.news"          // questions created today
	FeatureFeedPopularToday = "feed.popular_today" // above-average questions of today

	// === Content Features ===
	FeatureContentBestAnswer = "content.best_answer" // highlight best answer
	FeatureContentVisibility = "content.visibility"  // publish/hide questions
	FeatureContentDownvotes  = "content.downvotes"   // allow negative votes

	// === Scoring Features ===
	FeatureScoringReputation = "scoring.reputation" // user reputation score
)

// LoadFeatureFlags loads feature flags from environment variables.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{
		features:      make(map[string]*Feature),
		userOverrides: make(map[string]map[string]bool),
	}

	// Initialize all features with defaults
	ff.initializeDefaults()

	// Load overrides from environment
	ff.loadFromEnvironment()

	return ff
}

// initializeDefaults sets up all features with default values.
func (ff *FeatureFlags) initializeDefaults() {
	// Feed features - all enabled by default
	ff.features[FeatureFeedSocial] = &Feature{
		Name:           FeatureFeedSocial,
		Description:    "Social feed from followed users",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureFeedTopics] = &Feature{
		Name:           FeatureFeedTopics,
		Description:    "Feed from topics of interest",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureFeedNews] = &Feature{
		Name:           FeatureFeedNews,
		Description:    "Feed of questions created today",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureFeedPopularToday] = &Feature{
		Name:           FeatureFeedPopularToday,
		Description:    "Feed of today's above-average questions",
		Enabled:        true,
		RolloutPercent: 100,
	}

	// Content features
	ff.features[FeatureContentBestAnswer] = &Feature{
		Name:           FeatureContentBestAnswer,
		Description:    "Highlight the best answer of a question",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureContentVisibility] = &Feature{
		Name:           FeatureContentVisibility,
		Description:    "Allow authors to hide questions",
		Enabled:        true,
		RolloutPercent: 100,
	}

	ff.features[FeatureContentDownvotes] = &Feature{
		Name:           FeatureContentDownvotes,
		Description:    "Allow negative votes",
		Enabled:        true,
		RolloutPercent: 100,
	}

	// Scoring features
	ff.features[FeatureScoringReputation] = &Feature{
		Name:           FeatureScoringReputation,
		Description:    "User reputation scoring",
		Enabled:        true,
		RolloutPercent: 100,
	}
}

// loadFromEnvironment loads feature flag overrides from env vars.
// Format: FEATURE_<NAME>=true|false|<percent>
// Example: FEATURE_FEED_POPULAR_TODAY=true
// Example: FEATURE_CONTENT_DOWNVOTES=50 (50% rollout)
func (ff *FeatureFlags) loadFromEnvironment() {
	for name, feature := range ff.features {
		envKey := featureNameToEnvKey(name)
		if val := os.Getenv(envKey); val != "" {
			// Try parsing as boolean
			if b, err := strconv.ParseBool(val); err == nil {
				feature.Enabled = b
				if b {
					feature.RolloutPercent = 100
				} else {
					feature.RolloutPercent = 0
				}
				continue
			}

			// Try parsing as percentage
			if p, err := strconv.Atoi(val); err == nil && p >= 0 && p <= 100 {
				feature.Enabled = p > 0
				feature.RolloutPercent = p
			}
		}
	}
}

// featureNameToEnvKey converts feature name to environment variable key.
// "feed.popular_today" -> "FEATURE_FEED_POPULAR_TODAY"
func featureNameToEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, ".", "_")
	return "FEATURE_" + key
}

// IsEnabled checks if a feature is enabled for the given context.
func (ff *FeatureFlags) IsEnabled(featureName string, ctx *FeatureContext) bool {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	// Check user overrides first
	if ctx != nil && ctx.Username != "" {
		if userOverrides, ok := ff.userOverrides[ctx.Username]; ok {
			if enabled, ok := userOverrides[featureName]; ok {
				return enabled
			}
		}
	}

	feature, ok := ff.features[featureName]
	if !ok {
		return false
	}

	// Admin users get all features
	if ctx != nil && ctx.IsAdmin {
		return true
	}

	// Check if feature is enabled at all
	if !feature.Enabled {
		return false
	}

	// Check time-based activation
	now := time.Now()
	if feature.EnabledFrom != nil && now.Before(*feature.EnabledFrom) {
		return false
	}
	if feature.EnabledUntil != nil && now.After(*feature.EnabledUntil) {
		return false
	}

	// Check rollout percentage
	if feature.RolloutPercent < 100 && ctx != nil && ctx.Username != "" {
		return ff.isInRollout(ctx.Username, featureName, feature.RolloutPercent)
	}

	return feature.RolloutPercent > 0
}

// isInRollout determines if a user is in the rollout percentage.
// Uses consistent hashing so users stay in their bucket.
func (ff *FeatureFlags) isInRollout(username, featureName string, percent int) bool {
	// Create a consistent hash for this user+feature combination
	h := fnv.New32a()
	h.Write([]byte(featureName))
	h.Write([]byte(username))
	hash := h.Sum32()

	// Map to 0-99 range
	bucket := int(hash % 100)

	return bucket < percent
}

// SetUserOverride sets a feature override for a specific user.
// Useful for testing and debugging.
func (ff *FeatureFlags) SetUserOverride(username, featureName string, enabled bool) {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	if _, ok := ff.userOverrides[username]; !ok {
		ff.userOverrides[username] = make(map[string]bool)
	}
	ff.userOverrides[username][featureName] = enabled
}

// ClearUserOverrides removes all overrides for a user.
func (ff *FeatureFlags) ClearUserOverrides(username string) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	delete(ff.userOverrides, username)
}

// SetRolloutPercent updates the rollout percentage for a feature.
// Thread-safe for live updates.
func (ff *FeatureFlags) SetRolloutPercent(featureName string, percent int) error {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	feature, ok := ff.features[featureName]
	if !ok {
		return ErrFeatureNotFound
	}

	if percent < 0 || percent > 100 {
		return ErrInvalidRolloutPercent
	}

	feature.RolloutPercent = percent
	feature.Enabled = percent > 0

	return nil
}

// EnableFeature enables a feature at 100% rollout.
func (ff *FeatureFlags) EnableFeature(featureName string) error {
	return ff.SetRolloutPercent(featureName, 100)
}

// DisableFeature disables a feature completely.
func (ff *FeatureFlags) DisableFeature(featureName string) error {
	return ff.SetRolloutPercent(featureName, 0)
}

// GetAllFeatures returns a copy of all feature configurations.
func (ff *FeatureFlags) GetAllFeatures() map[string]*Feature {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	result := make(map[string]*Feature, len(ff.features))
	for k, v := range ff.features {
		// Return a copy
		featureCopy := *v
		result[k] = &featureCopy
	}
	return result
}

// --- Convenience methods for common checks ---

// FeedKindEnabled checks if the feed flag for the given kind name is enabled.
// Kind names match the tail of the flag: "social", "topics", "news",
// "popular_today".
func (ff *FeatureFlags) FeedKindEnabled(kind string, ctx *FeatureContext) bool {
	return ff.IsEnabled("feed."+kind, ctx)
}

// AnyFeedEnabled checks if at least one feed strategy is enabled.
func (ff *FeatureFlags) AnyFeedEnabled(ctx *FeatureContext) bool {
	return ff.IsEnabled(FeatureFeedSocial, ctx) ||
		ff.IsEnabled(FeatureFeedTopics, ctx) ||
		ff.IsEnabled(FeatureFeedNews, ctx) ||
		ff.IsEnabled(FeatureFeedPopularToday, ctx)
}

// --- Errors ---

var (
	ErrFeatureNotFound       = &FeatureFlagError{Message: "feature not found"}
	ErrInvalidRolloutPercent = &FeatureFlagError{Message: "rollout percent must be 0-100"}
)

// FeatureFlagError represents a feature flag error.
type FeatureFlagError struct {
	Message string
}

func (e *FeatureFlagError) Error() string {
	return e.Message
}
