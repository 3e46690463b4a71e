// Package timeouts defines shared timeout constants used by the web service
// and its upstream clients.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ContentRequest caps a single call to the content API.
const ContentRequest = 5 * time.Second

// CacheWarm caps one scheduled cache warm-up run.
const CacheWarm = 30 * time.Second
