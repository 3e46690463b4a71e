package templates

import "github.com/pleromasprings/website/internal/services/web/sitecontent"

// ProgramsView is the programs page content.
type ProgramsView struct {
	Page     sitecontent.ProgramsPage
	Programs []sitecontent.Program
}
