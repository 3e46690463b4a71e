package templates

import "net/http"

// ErrorPageTitle returns the heading for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.title.not_found")
	}
	return T(loc, "error.title.server")
}

// errorMessage falls back to the generic text for the status.
func errorMessage(statusCode int, message string, loc Localizer) string {
	if message != "" {
		return message
	}
	if statusCode == http.StatusNotFound {
		return T(loc, "error.message.not_found")
	}
	return T(loc, "error.message.server")
}
