// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used in production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal pushes events over HTTP straight to the worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// DefaultPageSize is used when the config does not set one.
	DefaultPageSize = 20
	// MaxPageSize caps listing requests when the config does not set one.
	MaxPageSize = 100
)
