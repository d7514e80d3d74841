package config

const (
	defaultDataDir             = "~/.local/share/moodpick"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultSimilarityThreshold = 0.12
	defaultMaxResults          = 8
	defaultRequireAll          = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Tagger: Tagger{
			SimilarityThreshold: defaultSimilarityThreshold,
		},
		Recommend: Recommend{
			MaxResults: defaultMaxResults,
			RequireAll: defaultRequireAll,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
