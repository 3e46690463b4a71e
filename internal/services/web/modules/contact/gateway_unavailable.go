package contact

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) SendContactMessage(context.Context, content.ContactMessage) error {
	return apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}

func (unavailableGateway) SubmitVolunteerApplication(context.Context, content.VolunteerApplication) error {
	return apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}

func (unavailableGateway) SubmitPartnerInquiry(context.Context, content.PartnerInquiry) error {
	return apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
