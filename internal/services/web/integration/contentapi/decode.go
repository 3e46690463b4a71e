package contentapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type envelope[T any] struct {
	Results []T `json:"results"`
}

// decodeList accepts a bare JSON array or a {"results": [...]} envelope.
func decodeList[T any](payload []byte) ([]T, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return []T{}, nil
	}
	switch payload[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return nonNil(items), nil
	case '{':
		var wrapped envelope[T]
		if err := json.Unmarshal(payload, &wrapped); err != nil {
			return nil, fmt.Errorf("decode list envelope: %w", err)
		}
		return nonNil(wrapped.Results), nil
	default:
		return nil, fmt.Errorf("decode list: unexpected payload")
	}
}

func decodeOne[T any](payload []byte) (T, error) {
	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return item, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
