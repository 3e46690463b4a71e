package content

import (
	"net/mail"
	"strings"
)

// FieldErrors maps a form field name to a message key.
type FieldErrors map[string]string

// Empty reports whether no field failed validation.
func (f FieldErrors) Empty() bool { return len(f) == 0 }

// MissingRequired reports whether any required field was left blank.
func (f FieldErrors) MissingRequired() bool {
	for _, key := range f {
		if key == errRequired {
			return true
		}
	}
	return false
}

const (
	errRequired = "form.error.required"
	errEmail    = "form.error.email"
)

// Subscription is a newsletter signup.
type Subscription struct {
	Email string `json:"email"`
}

// Normalize trims user input.
func (s Subscription) Normalize() Subscription {
	s.Email = strings.TrimSpace(s.Email)
	return s
}

// Validate checks the email is present and well formed.
func (s Subscription) Validate() FieldErrors {
	errs := FieldErrors{}
	requireEmail(errs, "email", s.Email)
	return errs
}

// ContactMessage is the general contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims user input.
func (m ContactMessage) Normalize() ContactMessage {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
	return m
}

// Validate requires every field.
func (m ContactMessage) Validate() FieldErrors {
	errs := FieldErrors{}
	require(errs, "name", m.Name)
	requireEmail(errs, "email", m.Email)
	require(errs, "subject", m.Subject)
	require(errs, "message", m.Message)
	return errs
}

// VolunteerApplication is the volunteer sign-up form. Keys match what the
// content API expects.
type VolunteerApplication struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AreaOfInterest string `json:"areaOfInterest"`
	Message        string `json:"message"`
}

// Normalize trims user input.
func (v VolunteerApplication) Normalize() VolunteerApplication {
	v.Name = strings.TrimSpace(v.Name)
	v.Email = strings.TrimSpace(v.Email)
	v.Phone = strings.TrimSpace(v.Phone)
	v.AreaOfInterest = strings.TrimSpace(v.AreaOfInterest)
	v.Message = strings.TrimSpace(v.Message)
	return v
}

// Validate requires name, email and area of interest.
func (v VolunteerApplication) Validate() FieldErrors {
	errs := FieldErrors{}
	require(errs, "name", v.Name)
	requireEmail(errs, "email", v.Email)
	require(errs, "areaOfInterest", v.AreaOfInterest)
	return errs
}

// PartnerInquiry is the partnership form.
type PartnerInquiry struct {
	OrganizationName string `json:"organizationName"`
	ContactPerson    string `json:"contactPerson"`
	Email            string `json:"email"`
	PartnershipType  string `json:"partnershipType"`
	Message          string `json:"message"`
}

// Normalize trims user input.
func (p PartnerInquiry) Normalize() PartnerInquiry {
	p.OrganizationName = strings.TrimSpace(p.OrganizationName)
	p.ContactPerson = strings.TrimSpace(p.ContactPerson)
	p.Email = strings.TrimSpace(p.Email)
	p.PartnershipType = strings.TrimSpace(p.PartnershipType)
	p.Message = strings.TrimSpace(p.Message)
	return p
}

// Validate requires organization, contact person, email and type.
func (p PartnerInquiry) Validate() FieldErrors {
	errs := FieldErrors{}
	require(errs, "organizationName", p.OrganizationName)
	require(errs, "contactPerson", p.ContactPerson)
	requireEmail(errs, "email", p.Email)
	require(errs, "partnershipType", p.PartnershipType)
	return errs
}

func require(errs FieldErrors, field string, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = errRequired
	}
}

func requireEmail(errs FieldErrors, field string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs[field] = errRequired
		return
	}
	if !ValidEmail(value) {
		errs[field] = errEmail
	}
}

// ValidEmail reports whether value parses as a bare address such as
// "ama@example.org" or "ama@localhost". Display-name forms are rejected.
func ValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == value
}
