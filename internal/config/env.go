// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "CADU_PORT"
	EnvLogLevel        = "CADU_LOG_LEVEL"
	EnvShutdownTimeout = "CADU_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir = "CADU_DATA_DIR"

	// Delegate (local LM Studio backend)
	EnvDelegateBaseURL = "CADU_DELEGATE_BASE_URL"
	EnvDelegateModel   = "CADU_DELEGATE_MODEL"
	EnvDelegateTimeout = "CADU_DELEGATE_TIMEOUT"
	EnvDelegateRetries = "CADU_DELEGATE_RETRIES"
	EnvDelegateDelay   = "CADU_DELEGATE_RETRY_DELAY"

	// Delegate fallback provider
	EnvGeminiAPIKey = "CADU_GEMINI_API_KEY"
	EnvGeminiModel  = "CADU_GEMINI_MODEL"

	// Conversation
	EnvHistoryWindow  = "CADU_HISTORY_WINDOW"
	EnvHistoryMaxLen  = "CADU_HISTORY_MAX_LEN"
	EnvMessageMaxLen  = "CADU_MESSAGE_MAX_LEN"
	EnvGlobalRateRPS  = "CADU_GLOBAL_RATE_RPS"
	EnvDisclaimerText = "CADU_DISCLAIMER_TEXT"

	// Matching thresholds
	EnvScopeThreshold   = "CADU_SCOPE_THRESHOLD"
	EnvRatioThreshold   = "CADU_RATIO_THRESHOLD"
	EnvPartialThreshold = "CADU_PARTIAL_THRESHOLD"
	EnvNameThreshold    = "CADU_NAME_THRESHOLD"
	EnvTypoThreshold    = "CADU_TYPO_THRESHOLD"

	// Sentry Feature
	EnvSentryDSN         = "CADU_SENTRY_DSN"
	EnvSentryEnvironment = "CADU_SENTRY_ENVIRONMENT"
	EnvSentryRelease     = "CADU_SENTRY_RELEASE"
	EnvSentrySampleRate  = "CADU_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken = "CADU_BETTERSTACK_TOKEN"

	// Metrics Auth Feature
	EnvMetricsUsername = "CADU_METRICS_USERNAME"
	EnvMetricsPassword = "CADU_METRICS_PASSWORD"
)
