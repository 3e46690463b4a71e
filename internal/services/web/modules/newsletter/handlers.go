package newsletter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

const (
	formName     = "newsletter"
	maxFormBytes = 8 << 10
	emailField   = "email"
)

type subscribeService interface {
	subscribe(ctx context.Context, subscription content.Subscription) error
}

type handlers struct {
	modulehandler.Base
	service subscribeService
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleOpenModal(w http.ResponseWriter, r *http.Request) {
	h.Redirect(w, r, withModal(routepath.Root))
}

func (h handlers) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.Logf("parse form failed path=%s err=%v", r.URL.Path, err)
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "parse newsletter form", err))
		return
	}
	returnTo, ok := routepath.LocalPath(r.PostFormValue(routepath.ReturnToField))
	if !ok {
		returnTo = routepath.Root
	}
	subscription := content.Subscription{Email: r.PostFormValue(emailField)}.Normalize()

	if errs := subscription.Validate(); !errs.Empty() {
		h.ObserveForm(formName, "invalid")
		notice := flashnotice.Error("newsletter.error.required")
		if !errs.MissingRequired() {
			loc, _ := h.PageLocalizer(r)
			notice = flashnotice.Notice{Kind: flashnotice.KindError, Key: "newsletter.error.api_field", Message: webtemplates.T(loc, errs[emailField])}
		}
		h.reopen(w, r, returnTo, notice)
		return
	}
	if err := h.service.subscribe(r.Context(), subscription); err != nil {
		h.ObserveForm(formName, "failed")
		h.Logf("submit form failed form=%s err=%v", formName, err)
		notice := flashnotice.Error("newsletter.error.api")
		if apiErr, ok := contentapi.AsAPIError(err); ok {
			if message, ok := apiErr.FieldMessage(emailField); ok {
				notice = flashnotice.Notice{Kind: flashnotice.KindError, Key: "newsletter.error.api_field", Message: message}
			}
		}
		h.reopen(w, r, returnTo, notice)
		return
	}
	h.ObserveForm(formName, "accepted")
	h.WriteNotice(w, r, flashnotice.Success("newsletter.success"))
	h.Redirect(w, r, returnTo)
}

// reopen sends the visitor back with the modal open so notice shows inside it.
func (h handlers) reopen(w http.ResponseWriter, r *http.Request, returnTo string, notice flashnotice.Notice) {
	h.WriteNotice(w, r, notice)
	h.Redirect(w, r, withModal(returnTo))
}

func withModal(path string) string {
	parsed, err := url.Parse(path)
	if err != nil {
		return routepath.WithParam(routepath.Root, "", routepath.SubscribeParam, "1")
	}
	return routepath.WithParam(parsed.Path, parsed.RawQuery, routepath.SubscribeParam, "1")
}
