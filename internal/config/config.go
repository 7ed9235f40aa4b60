package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Generator string
	Storage   StorageConfig
	Summary   SummaryConfig
	Autosave  AutosaveConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Generator: envOrDefault(envGenerator, defaultGenerator),
		Storage:   loadStorage(),
		Summary:   loadSummary(),
		Autosave:  loadAutosave(),
		Metrics:   loadMetrics(),
	}
}
