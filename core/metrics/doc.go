// Package metrics exposes prometheus metrics for search and catalog publishing.
//
// Metrics live on a private registry rather than the global default one, so
// tests can build as many registries as they need. Handler serves the
// registry and is mounted on /metrics by the start command.
package metrics
