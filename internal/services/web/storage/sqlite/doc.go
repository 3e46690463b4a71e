// Package sqlite provides the content cache store backed by SQLite.
//
// Rows only hold derived content API payloads and can be rebuilt at any time.
package sqlite
