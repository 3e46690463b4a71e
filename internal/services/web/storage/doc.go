// Package storage declares persistence interfaces for cached content API
// payloads.
//
// Cached rows are derived from the content API and can always be discarded.
package storage
