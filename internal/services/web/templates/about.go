package templates

import "github.com/pleromasprings/website/internal/services/web/sitecontent"

// TeamCard is one member in the team grid.
type TeamCard struct {
	Name    string
	Role    string
	Picture string
	URL     string
}

// MemberDetail is the content of the team member modal.
type MemberDetail struct {
	Name     string
	Role     string
	Bio      string
	Picture  string
	Email    string
	LinkedIn string
	Twitter  string
	CloseURL string
}

// AboutView is the about page content.
type AboutView struct {
	About          sitecontent.About
	Team           []TeamCard
	TeamFailed     bool
	SelectedMember *MemberDetail
}

type principle struct {
	key  string
	body string
}

func principles(about sitecontent.About) []principle {
	return []principle{
		{key: "about.mission", body: about.Mission},
		{key: "about.vision", body: about.Vision},
		{key: "about.values", body: about.Values},
	}
}
