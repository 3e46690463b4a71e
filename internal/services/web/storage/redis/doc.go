// Package redis provides a content cache store backed by Redis, for
// deployments that run more than one web process against a shared cache.
package redis
