// Package contentapi is the HTTP client of the foundation's content API.
//
// Every call is one request: no retries, no pagination. Failures map to typed
// web errors so handlers can choose between a section message and an error
// page without inspecting HTTP details.
package contentapi
