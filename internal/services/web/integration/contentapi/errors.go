package contentapi

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

const maxDetailRunes = 240

// APIError is a non-2xx answer from the content API.
type APIError struct {
	Endpoint string
	Status   int
	// Fields holds per-field validation messages, as in {"email": ["..."]}.
	Fields map[string][]string
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api %s returned %d", e.Endpoint, e.Status)
}

// FieldMessage returns the first message reported for field.
func (e *APIError) FieldMessage(field string) (string, bool) {
	if e == nil {
		return "", false
	}
	messages := e.Fields[field]
	for _, message := range messages {
		if message = strings.TrimSpace(message); message != "" {
			return message, true
		}
	}
	return "", false
}

// Details renders the response body for display: compact JSON when the body
// is JSON, otherwise trimmed text. Long bodies are cut.
func (e *APIError) Details() string {
	if e == nil {
		return ""
	}
	body := bytes.TrimSpace(e.Body)
	if len(body) == 0 {
		return ""
	}
	var compacted bytes.Buffer
	text := string(body)
	if json.Valid(body) && json.Compact(&compacted, body) == nil {
		text = compacted.String()
	}
	if runes := []rune(text); len(runes) > maxDetailRunes {
		text = string(runes[:maxDetailRunes]) + "..."
	}
	return text
}

// AsAPIError extracts an APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func mapError(endpoint string, status int, body []byte, cause error) error {
	if cause != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "content api "+endpoint+" unreachable", cause)
	}
	apiErr := &APIError{
		Endpoint: endpoint,
		Status:   status,
		Fields:   decodeFieldErrors(body),
		Body:     body,
	}
	switch {
	case status == http.StatusNotFound:
		return apperrors.Wrap(apperrors.KindNotFound, "content api "+endpoint+" not found", apiErr)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperrors.Wrap(apperrors.KindInvalidInput, "content api "+endpoint+" rejected input", apiErr)
	case status == http.StatusTooManyRequests:
		return apperrors.Wrap(apperrors.KindRateLimited, "content api "+endpoint+" throttled", apiErr)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.Wrap(apperrors.KindForbidden, "content api "+endpoint+" refused", apiErr)
	default:
		return apperrors.Wrap(apperrors.KindUnavailable, "content api "+endpoint+" failed", apiErr)
	}
}

// decodeFieldErrors reads {"field": ["msg", ...]} and {"field": "msg"}
// bodies. Anything else yields nil.
func decodeFieldErrors(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	fields := make(map[string][]string, len(raw))
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var list []string
		if err := json.Unmarshal(raw[key], &list); err == nil {
			fields[key] = list
			continue
		}
		var single string
		if err := json.Unmarshal(raw[key], &single); err == nil {
			fields[key] = []string{single}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
