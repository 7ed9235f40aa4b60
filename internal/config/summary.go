package config

import "time"

const (
	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIAPIKey  = "OPENAI_API_KEY"
	envOpenAIModel   = "OPENAI_MODEL"
	envOpenAITimeout = "OPENAI_TIMEOUT"

	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAITimeout = 30 * Duration(time.Second)
)

// SummaryConfig controls how we talk to the text-generation API.
type SummaryConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func loadSummary() SummaryConfig {
	return SummaryConfig{
		BaseURL: envOrDefault(envOpenAIBaseURL, ""),
		APIKey:  envOrDefault(envOpenAIAPIKey, ""),
		Model:   envOrDefault(envOpenAIModel, defaultOpenAIModel),
		Timeout: durationEnvOrDefault(envOpenAITimeout, defaultOpenAITimeout),
	}
}
