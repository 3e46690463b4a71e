package impact

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

type fakeGateway struct {
	stats      []content.ImpactStat
	statsErr   error
	stories    []content.TransformationStory
	storiesErr error
}

var _ ImpactGateway = fakeGateway{}

func (f fakeGateway) ListImpactStats(context.Context) ([]content.ImpactStat, error) {
	return f.stats, f.statsErr
}

func (f fakeGateway) ListTransformationStories(context.Context) ([]content.TransformationStory, error) {
	return f.stories, f.storiesErr
}
