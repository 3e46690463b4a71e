package routepath

import "testing"

func TestNewsPostEscapesSlug(t *testing.T) {
	t.Parallel()

	if got := NewsPost(" clinic-day "); got != "/news/clinic-day" {
		t.Fatalf("NewsPost() = %q", got)
	}
	if got := NewsPost("a/b"); got != "/news/a%2Fb" {
		t.Fatalf("NewsPost(a/b) = %q", got)
	}
}

func TestWithParamKeepsOtherParams(t *testing.T) {
	t.Parallel()

	got := WithParam(Gallery, "category=Outreach&sort=title_asc&photo=3", PhotoParam, "7")
	if got != "/gallery?category=Outreach&photo=7&sort=title_asc" {
		t.Fatalf("WithParam() = %q", got)
	}
	if got := WithParam(Events, "", EventParam, "2"); got != "/events?event=2" {
		t.Fatalf("WithParam(empty) = %q", got)
	}
}

func TestWithoutParams(t *testing.T) {
	t.Parallel()

	if got := WithoutParams(Gallery, "photo=3&view=grid", PhotoParam); got != "/gallery?view=grid" {
		t.Fatalf("WithoutParams() = %q", got)
	}
	if got := WithoutParams(About, "member=4", MemberParam); got != "/about-us" {
		t.Fatalf("WithoutParams(last) = %q", got)
	}
}

func TestWithAnchor(t *testing.T) {
	t.Parallel()

	if got := WithAnchor(Contact, VolunteerAnchor); got != "/contact#volunteer" {
		t.Fatalf("WithAnchor() = %q", got)
	}
	if got := WithAnchor(Contact, ""); got != "/contact" {
		t.Fatalf("WithAnchor(empty) = %q", got)
	}
}

func TestLocalPath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/events?event=2":       true,
		" /news ":               true,
		"":                      false,
		"events":                false,
		"//evil.test/x":         false,
		"/\\evil.test":          false,
		"https://evil.test/":    false,
		"/ok\r\nSet-Cookie: x=": false,
	}
	for raw, want := range tests {
		if _, ok := LocalPath(raw); ok != want {
			t.Fatalf("LocalPath(%q) ok = %v, want %v", raw, ok, want)
		}
	}
}

func TestAbsolute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		site, path, want string
	}{
		{site: "https://pleromasprings.org/", path: "/news/clinic", want: "https://pleromasprings.org/news/clinic"},
		{site: "https://pleromasprings.org", path: "/", want: "https://pleromasprings.org/"},
		{site: "", path: "/events", want: "/events"},
	}
	for _, tc := range tests {
		if got := Absolute(tc.site, tc.path); got != tc.want {
			t.Fatalf("Absolute(%q, %q) = %q, want %q", tc.site, tc.path, got, tc.want)
		}
	}
}
