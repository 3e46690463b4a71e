package templates

import (
	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// FormState carries a submitted form back into the page.
type FormState[T any] struct {
	Values T
	Errors content.FieldErrors
	Alert  string
}

// ContactView is the contact page with its three forms.
type ContactView struct {
	Contact          sitecontent.Contact
	Page             sitecontent.ContactPage
	VolunteerAreas   []string
	PartnershipTypes []string
	Message          FormState[content.ContactMessage]
	Volunteer        FormState[content.VolunteerApplication]
	Partner          FormState[content.PartnerInquiry]
}

func fieldID(form string, field string) string {
	return form + "-" + field
}
