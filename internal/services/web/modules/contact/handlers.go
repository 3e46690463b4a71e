package contact

import (
	"context"
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

// maxFormBytes caps a form body.
const maxFormBytes = 64 << 10

// Form names used in metrics and logs.
const (
	formContact   = "contact"
	formVolunteer = "volunteer"
	formPartner   = "partner"
)

// Submission outcomes.
const (
	outcomeAccepted = "accepted"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
)

type submissionService interface {
	sendMessage(ctx context.Context, message content.ContactMessage) error
	submitVolunteer(ctx context.Context, application content.VolunteerApplication) error
	submitPartner(ctx context.Context, inquiry content.PartnerInquiry) error
}

type handlers struct {
	modulehandler.Base
	service submissionService
	site    sitecontent.Site
}

func newHandlers(s service, base modulehandler.Base, site sitecontent.Site) handlers {
	return handlers{Base: base, service: s, site: site}
}

func (h handlers) page() webtemplates.ContactView {
	return webtemplates.ContactView{
		Contact:          h.site.Contact,
		Page:             h.site.ContactPage,
		VolunteerAreas:   h.site.VolunteerAreas,
		PartnershipTypes: h.site.PartnershipTypes,
	}
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, status int, view webtemplates.ContactView) {
	h.WritePage(w, r, webtemplates.T(loc, "contact.title"), status, webtemplates.ContactPage(view, loc))
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	h.render(w, r, loc, http.StatusOK, h.page())
}

func (h handlers) redirectTo(anchor string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.Redirect(w, r, routepath.WithAnchor(routepath.Contact, anchor))
	}
}

func (h handlers) handleMessage(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(r)
	message := content.ContactMessage{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}.Normalize()
	view := h.page()

	if errs := message.Validate(); !errs.Empty() {
		h.ObserveForm(formContact, outcomeInvalid)
		view.Message = webtemplates.FormState[content.ContactMessage]{Values: message, Errors: errs, Alert: requiredAlert(loc, errs, "contact.error.required")}
		h.render(w, r, loc, http.StatusBadRequest, view)
		return
	}
	if err := h.service.sendMessage(r.Context(), message); err != nil {
		h.ObserveForm(formContact, outcomeFailed)
		h.Logf("submit form failed form=%s err=%v", formContact, err)
		alert := webtemplates.T(loc, "contact.error.api")
		if apiErr, ok := contentapi.AsAPIError(err); ok {
			if details := apiErr.Details(); details != "" {
				alert = webtemplates.T(loc, "contact.error.api_details", details)
			}
		}
		view.Message = webtemplates.FormState[content.ContactMessage]{Values: message, Alert: alert}
		h.render(w, r, loc, failureStatus(err), view)
		return
	}
	h.accept(w, r, formContact, "contact.success", routepath.ContactAnchor)
}

func (h handlers) handleVolunteer(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(r)
	application := content.VolunteerApplication{
		Name:           r.PostFormValue("name"),
		Email:          r.PostFormValue("email"),
		Phone:          r.PostFormValue("phone"),
		AreaOfInterest: r.PostFormValue("areaOfInterest"),
		Message:        r.PostFormValue("message"),
	}.Normalize()
	view := h.page()

	if errs := application.Validate(); !errs.Empty() {
		h.ObserveForm(formVolunteer, outcomeInvalid)
		view.Volunteer = webtemplates.FormState[content.VolunteerApplication]{Values: application, Errors: errs, Alert: requiredAlert(loc, errs, "volunteer.error.required")}
		h.render(w, r, loc, http.StatusBadRequest, view)
		return
	}
	if err := h.service.submitVolunteer(r.Context(), application); err != nil {
		h.ObserveForm(formVolunteer, outcomeFailed)
		h.Logf("submit form failed form=%s err=%v", formVolunteer, err)
		view.Volunteer = webtemplates.FormState[content.VolunteerApplication]{Values: application, Alert: webtemplates.T(loc, "volunteer.error.api")}
		h.render(w, r, loc, failureStatus(err), view)
		return
	}
	h.accept(w, r, formVolunteer, "volunteer.success", routepath.VolunteerAnchor)
}

func (h handlers) handlePartner(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	loc, _ := h.PageLocalizer(r)
	inquiry := content.PartnerInquiry{
		OrganizationName: r.PostFormValue("organizationName"),
		ContactPerson:    r.PostFormValue("contactPerson"),
		Email:            r.PostFormValue("email"),
		PartnershipType:  r.PostFormValue("partnershipType"),
		Message:          r.PostFormValue("message"),
	}.Normalize()
	view := h.page()

	if errs := inquiry.Validate(); !errs.Empty() {
		h.ObserveForm(formPartner, outcomeInvalid)
		view.Partner = webtemplates.FormState[content.PartnerInquiry]{Values: inquiry, Errors: errs, Alert: requiredAlert(loc, errs, "partner.error.required")}
		h.render(w, r, loc, http.StatusBadRequest, view)
		return
	}
	if err := h.service.submitPartner(r.Context(), inquiry); err != nil {
		h.ObserveForm(formPartner, outcomeFailed)
		h.Logf("submit form failed form=%s err=%v", formPartner, err)
		view.Partner = webtemplates.FormState[content.PartnerInquiry]{Values: inquiry, Alert: webtemplates.T(loc, "partner.error.api")}
		h.render(w, r, loc, failureStatus(err), view)
		return
	}
	h.accept(w, r, formPartner, "partner.success", routepath.PartnerAnchor)
}

func (h handlers) accept(w http.ResponseWriter, r *http.Request, form string, successKey string, anchor string) {
	h.ObserveForm(form, outcomeAccepted)
	h.WriteNotice(w, r, flashnotice.Success(successKey))
	h.Redirect(w, r, routepath.WithAnchor(routepath.Contact, anchor))
}

func (h handlers) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.Logf("parse form failed path=%s err=%v", r.URL.Path, err)
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "parse contact form", err))
		return false
	}
	return true
}

// requiredAlert returns the form-level alert when a required field is
// blank. Format-only problems are reported next to the field.
func requiredAlert(loc webtemplates.Localizer, errs content.FieldErrors, key string) string {
	if !errs.MissingRequired() {
		return ""
	}
	return webtemplates.T(loc, key)
}

func failureStatus(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
