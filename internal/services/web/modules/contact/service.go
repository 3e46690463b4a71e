package contact

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// SubmissionGateway posts the contact page forms to the content API.
type SubmissionGateway interface {
	SendContactMessage(ctx context.Context, message content.ContactMessage) error
	SubmitVolunteerApplication(ctx context.Context, application content.VolunteerApplication) error
	SubmitPartnerInquiry(ctx context.Context, inquiry content.PartnerInquiry) error
}

type service struct {
	gateway SubmissionGateway
}

func newService(gateway SubmissionGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) sendMessage(ctx context.Context, message content.ContactMessage) error {
	return s.gateway.SendContactMessage(ctx, message)
}

func (s service) submitVolunteer(ctx context.Context, application content.VolunteerApplication) error {
	return s.gateway.SubmitVolunteerApplication(ctx, application)
}

func (s service) submitPartner(ctx context.Context, inquiry content.PartnerInquiry) error {
	return s.gateway.SubmitPartnerInquiry(ctx, inquiry)
}
