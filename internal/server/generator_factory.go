package server

import (
	"log/slog"
	"strings"

	"boxscore-service/internal/config"
	"boxscore-service/internal/metrics"
	"boxscore-service/internal/summary"
	"boxscore-service/internal/summary/fixture"
	"boxscore-service/internal/summary/openai"
)

// generatorFactory assembles the summary generator with the shared retry wrapper.
type generatorFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newGeneratorFactory(logger *slog.Logger, metrics *metrics.Recorder) generatorFactory {
	return generatorFactory{logger: logger, metrics: metrics}
}

func (f generatorFactory) build(cfg config.Config) summary.Generator {
	name := normalizeGeneratorName(cfg.Generator)
	base := selectGenerator(name, cfg, f.logger)
	return summary.NewRetryingGenerator(base, f.logger, f.metrics, name, 0, 0)
}

func selectGenerator(name string, cfg config.Config, logger *slog.Logger) summary.Generator {
	switch name {
	case "openai":
		if cfg.Summary.APIKey == "" && logger != nil {
			logger.Warn("openai generator selected without an api key; calls will fail")
		}
		return openai.NewClient(openai.Config{
			BaseURL: cfg.Summary.BaseURL,
			APIKey:  cfg.Summary.APIKey,
			Model:   cfg.Summary.Model,
			Timeout: cfg.Summary.Timeout,
		})
	default:
		if name != "fixture" && logger != nil {
			logger.Warn("unknown summary generator, falling back to fixture", slog.String("generator", name))
		}
		return fixture.New()
	}
}

// normalizeGeneratorName returns a lower-cased generator name used
// consistently in metrics/logs.
func normalizeGeneratorName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "fixture"
	}
	return name
}
