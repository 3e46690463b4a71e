package content

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBlogPostDecodesCategoryShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		wantLabel string
		wantSet   bool
	}{
		{name: "nested object", payload: `{"category":{"id":3,"name":"Outreach","slug":"outreach"}}`, wantLabel: "Outreach", wantSet: true},
		{name: "name string", payload: `{"category":"Research"}`, wantLabel: "Research", wantSet: true},
		{name: "primary key", payload: `{"category":7}`, wantLabel: "7", wantSet: true},
		{name: "null", payload: `{"category":null}`, wantLabel: "", wantSet: false},
		{name: "missing", payload: `{}`, wantLabel: "", wantSet: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var post BlogPost
			if err := json.Unmarshal([]byte(tc.payload), &post); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := post.Category.Label(); got != tc.wantLabel {
				t.Fatalf("label = %q, want %q", got, tc.wantLabel)
			}
			if post.Category.Set != tc.wantSet {
				t.Fatalf("set = %v, want %v", post.Category.Set, tc.wantSet)
			}
		})
	}
}

func TestDateDecodesAPILayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: `"2025-05-01"`, want: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		{raw: `"2025-05-01T10:30:00Z"`, want: time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)},
		{raw: `"2025-05-01T10:30:00.123456"`, want: time.Date(2025, 5, 1, 10, 30, 0, 123456000, time.UTC)},
		{raw: `""`, want: time.Time{}},
		{raw: `null`, want: time.Time{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			var got Date
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("decode %s: %v", tc.raw, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("decode %s = %v, want %v", tc.raw, got.Time, tc.want)
			}
		})
	}
}

func TestDateRejectsUnknownLayout(t *testing.T) {
	t.Parallel()

	var got Date
	if err := json.Unmarshal([]byte(`"01/05/2025"`), &got); err == nil {
		t.Fatal("expected unknown date layout to fail")
	}
}

func TestIDAcceptsNumbersAndStrings(t *testing.T) {
	t.Parallel()

	var event Event
	if err := json.Unmarshal([]byte(`{"id": 42}`), &event); err != nil {
		t.Fatalf("decode numeric id: %v", err)
	}
	if event.ID != "42" {
		t.Fatalf("id = %q, want 42", event.ID)
	}
	if err := json.Unmarshal([]byte(`{"id": " evt-7 "}`), &event); err != nil {
		t.Fatalf("decode string id: %v", err)
	}
	if event.ID != "evt-7" {
		t.Fatalf("id = %q, want evt-7", event.ID)
	}
}

func TestCachedPayloadDecodesBackToSameRecord(t *testing.T) {
	t.Parallel()

	original := GalleryItem{
		ID:          "9",
		Title:       "Clinic day",
		Category:    CategoryRef{Category: Category{ID: "2", Name: "Outreach"}, Set: true},
		UploadDate:  Date{Time: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		IsPublished: true,
	}
	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var decoded GalleryItem
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Category.Label() != "Outreach" || !decoded.UploadDate.Equal(original.UploadDate.Time) || decoded.ID != "9" {
		t.Fatalf("decoded = %+v, want %+v", decoded, original)
	}
}

func TestImpactStatCounterTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   int64
		wantOK bool
	}{
		{value: "50K+", want: 50, wantOK: true},
		{value: "1,200", want: 1200, wantOK: true},
		{value: "15+", want: 15, wantOK: true},
		{value: "Nationwide", want: 0, wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ImpactStat{Value: tc.value}.CounterTarget()
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("CounterTarget(%q) = %d, %v; want %d, %v", tc.value, got, ok, tc.want, tc.wantOK)
		}
	}
}
