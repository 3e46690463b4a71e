package templates

// EventsView is the events listing.
type EventsView struct {
	Events   []EventCard
	Failed   bool
	Selected *EventDetail
}
