package contact

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway records submissions and returns err for every call.
type fakeGateway struct {
	err          error
	messages     *[]content.ContactMessage
	applications *[]content.VolunteerApplication
	inquiries    *[]content.PartnerInquiry
}

var _ SubmissionGateway = fakeGateway{}

func (f fakeGateway) SendContactMessage(_ context.Context, message content.ContactMessage) error {
	if f.messages != nil {
		*f.messages = append(*f.messages, message)
	}
	return f.err
}

func (f fakeGateway) SubmitVolunteerApplication(_ context.Context, application content.VolunteerApplication) error {
	if f.applications != nil {
		*f.applications = append(*f.applications, application)
	}
	return f.err
}

func (f fakeGateway) SubmitPartnerInquiry(_ context.Context, inquiry content.PartnerInquiry) error {
	if f.inquiries != nil {
		*f.inquiries = append(*f.inquiries, inquiry)
	}
	return f.err
}
