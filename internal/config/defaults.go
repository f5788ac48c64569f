package config

const (
	defaultDataDir                = "~/.local/share/reviewd"
	defaultLogDir                 = "~/.local/share/reviewd/logs"
	defaultAPIBind                = "127.0.0.1:8347"
	defaultReviewerBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultReviewerModel          = "google/gemini-2.5-flash"
	defaultReviewerTimeoutSeconds = 60
	defaultCacheTTLDays           = 7
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults. The reviewer
// API key has no default on purpose; it must come from the config file or
// the REVIEWD_API_KEY environment variable.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Reviewer: Reviewer{
			BaseURL:        defaultReviewerBaseURL,
			Model:          defaultReviewerModel,
			TimeoutSeconds: defaultReviewerTimeoutSeconds,
		},
		Cache: Cache{
			Enabled: true,
			TTLDays: defaultCacheTTLDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
