package storage

import (
	"testing"
	"time"
)

func TestCacheEntryExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "no expiry", want: false},
		{name: "future", expiresAt: now.Add(time.Minute), want: false},
		{name: "exactly now", expiresAt: now, want: true},
		{name: "past", expiresAt: now.Add(-time.Second), want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := (CacheEntry{ExpiresAt: tc.expiresAt}).Expired(now); got != tc.want {
				t.Fatalf("Expired() = %v, want %v", got, tc.want)
			}
		})
	}
}
