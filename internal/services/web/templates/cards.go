package templates

// PostCard is a blog post summary.
type PostCard struct {
	Title    string
	URL      string
	Image    string
	Excerpt  string
	Date     string
	Author   string
	Category string
}

// EventCard is an event summary linking to its detail modal.
type EventCard struct {
	ID        string
	Title     string
	Excerpt   string
	Date      string
	Time      string
	Location  string
	Image     string
	DetailURL string
}

// EventDetail is the content of the event modal.
type EventDetail struct {
	Title           string
	Description     string
	Date            string
	Time            string
	Location        string
	Image           string
	RegistrationURL string
	CloseURL        string
}
