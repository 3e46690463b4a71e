package modules

import (
	"context"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/content"
	module "github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

type fakeGateway struct{}

func (fakeGateway) ListBlogPosts(context.Context, content.BlogPostQuery) ([]content.BlogPost, error) {
	return nil, nil
}

func (fakeGateway) GetBlogPost(context.Context, string) (content.BlogPost, error) {
	return content.BlogPost{}, nil
}

func (fakeGateway) ListCategories(context.Context) ([]content.Category, error) { return nil, nil }

func (fakeGateway) ListEvents(context.Context, content.EventQuery) ([]content.Event, error) {
	return nil, nil
}

func (fakeGateway) ListGalleryItems(context.Context) ([]content.GalleryItem, error) {
	return nil, nil
}

func (fakeGateway) ListResources(context.Context) ([]content.Resource, error) { return nil, nil }

func (fakeGateway) ListTeamMembers(context.Context) ([]content.TeamMember, error) { return nil, nil }

func (fakeGateway) ListImpactStats(context.Context) ([]content.ImpactStat, error) { return nil, nil }

func (fakeGateway) ListTransformationStories(context.Context) ([]content.TransformationStory, error) {
	return nil, nil
}

func (fakeGateway) Subscribe(context.Context, content.Subscription) error { return nil }

func (fakeGateway) SendContactMessage(context.Context, content.ContactMessage) error { return nil }

func (fakeGateway) SubmitVolunteerApplication(context.Context, content.VolunteerApplication) error {
	return nil
}

func (fakeGateway) SubmitPartnerInquiry(context.Context, content.PartnerInquiry) error { return nil }

func testDependencies(gateway Gateway) Dependencies {
	return Dependencies{
		Gateway: gateway,
		Base:    modulehandler.NewTestBase(),
		Site:    sitecontent.Default(),
		SiteURL: "https://example.org",
	}
}

func TestDefaultModulesFollowNavigationOrder(t *testing.T) {
	t.Parallel()

	want := []string{"home", "about", "programs", "impact", "news", "events", "gallery", "resources", "contact", "newsletter"}
	got := Default(testDependencies(fakeGateway{}))
	if len(got) != len(want) {
		t.Fatalf("module count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Fatalf("module[%d] id = %q, want %q", i, got[i].ID(), id)
		}
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	for _, feature := range Default(testDependencies(fakeGateway{})) {
		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", feature.ID(), err)
		}
		if mount.Prefix == "" || mount.Handler == nil {
			t.Fatalf("module %q mount = %+v", feature.ID(), mount)
		}
		if owner, ok := seen[mount.Prefix]; ok {
			t.Fatalf("prefix %q mounted by %q and %q", mount.Prefix, owner, feature.ID())
		}
		seen[mount.Prefix] = feature.ID()
	}
}

func TestDefaultModulesReportHealthFromGateway(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		gateway Gateway
		want    bool
	}{
		{name: "configured", gateway: fakeGateway{}, want: true},
		{name: "missing", gateway: nil, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reporters := 0
			for _, feature := range Default(testDependencies(tc.gateway)) {
				reporter, ok := feature.(module.HealthReporter)
				if !ok {
					continue
				}
				reporters++
				if got := reporter.Healthy(); got != tc.want {
					t.Fatalf("module %q Healthy() = %v, want %v", feature.ID(), got, tc.want)
				}
			}
			if reporters != 9 {
				t.Fatalf("health reporters = %d, want 9", reporters)
			}
		})
	}
}
