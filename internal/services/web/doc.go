// Package web serves the foundation's public website: the page and form
// modules, static assets and metrics, fronting the content API through an
// optional read cache.
package web
