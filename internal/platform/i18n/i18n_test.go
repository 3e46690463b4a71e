package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "en-US", want: "en-US", wantOK: true},
		{raw: "fr-FR", want: "fr-FR", wantOK: true},
		{raw: "fr", want: "fr-FR", wantOK: true},
		{raw: "", want: "en-US", wantOK: false},
		{raw: "not a tag", want: "en-US", wantOK: false},
		{raw: "ja-JP", want: "en-US", wantOK: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTag(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.raw, ok, tc.wantOK)
			}
			if got.String() != tc.want {
				t.Fatalf("ParseTag(%q) = %q, want %q", tc.raw, got.String(), tc.want)
			}
		})
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want %v", got, DefaultTag())
	}
	if got := MatchTags([]language.Tag{language.French}); got.String() != "fr-FR" {
		t.Fatalf("MatchTags(fr) = %v, want fr-FR", got)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.Japanese
	if SupportedTags()[0] != DefaultTag() {
		t.Fatal("expected SupportedTags to return a copy")
	}
}
