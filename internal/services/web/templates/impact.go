package templates

import "github.com/pleromasprings/website/internal/services/web/sitecontent"

// StatCard is one headline figure. Target drives the animated counter while
// Value keeps the text the API sent.
type StatCard struct {
	Title     string
	Value     string
	Icon      string
	Target    int64
	HasTarget bool
}

// StoryCard is one transformation story.
type StoryCard struct {
	Name     string
	Location string
	Story    string
	Image    string
}

// ImpactView is the impact page content.
type ImpactView struct {
	Page    sitecontent.ImpactPage
	Stats   []StatCard
	Stories []StoryCard
}
