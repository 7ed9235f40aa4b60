package config

import "time"

const (
	envPort             = "PORT"
	envStorage          = "STORAGE"
	envDataDir          = "DATA_DIR"
	envGenerator        = "SUMMARY_GENERATOR"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken       = "ADMIN_TOKEN"
	envAutosaveOn       = "AUTOSAVE_ENABLED"
	envAutosaveInterval = "AUTOSAVE_INTERVAL"
	envSnapshotDays     = "SNAPSHOT_RETENTION_DAYS"

	defaultPort    = "4000"
	defaultStorage = "badger"
	defaultDataDir = "data"
	// Fixture keeps local runs free of API keys; opt into openai explicitly.
	defaultGenerator   = "fixture"
	defaultMetricsPort = "9090"
	defaultAutosaveOn  = true
	// Autosave cadence balances snapshot freshness against disk churn; the
	// primary store is already written synchronously on every action.
	defaultAutosaveInterval = 30 * Duration(time.Second)
	defaultSnapshotDays     = 14
)
