package resources

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway implements ResourceGateway for tests.
type fakeGateway struct {
	resources []content.Resource
	err       error
}

var _ ResourceGateway = fakeGateway{}

func (f fakeGateway) ListResources(context.Context) ([]content.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resources, nil
}
