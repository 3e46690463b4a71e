package events

import (
	"context"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway implements EventGateway for tests.
type fakeGateway struct {
	events []content.Event
	err    error
	query  *content.EventQuery
}

var _ EventGateway = fakeGateway{}

func (f fakeGateway) ListEvents(_ context.Context, query content.EventQuery) ([]content.Event, error) {
	if f.query != nil {
		*f.query = query
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func day(y int, m time.Month, d int) content.Date {
	return content.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func sampleEvents() []content.Event {
	return []content.Event{
		{ID: "2", Title: "Dental Camp", Description: "Free check-ups for children.", EventDate: day(2025, time.August, 9), Time: "10:00:00", Location: "Tema"},
		{ID: "1", Title: "Fundraising Gala", Description: "An evening with partners.", EventDate: day(2025, time.June, 14), Time: "18:30:00", Location: "Accra", RegistrationLink: "https://example.org/gala"},
	}
}
