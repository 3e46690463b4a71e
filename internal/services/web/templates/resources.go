package templates

// ResourceCard is one downloadable document.
type ResourceCard struct {
	Title       string
	Description string
	URL         string
}

// ResourcesView is the resources listing.
type ResourcesView struct {
	Resources []ResourceCard
	Failed    bool
}
