package templates

import (
	"strings"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

type navItem struct {
	key      string
	path     string
	children []navItem
}

var navItems = []navItem{
	{key: "nav.home", path: routepath.Root},
	{key: "nav.about", path: routepath.About, children: []navItem{
		{key: "nav.mission", path: routepath.WithAnchor(routepath.About, "mission")},
		{key: "nav.team", path: routepath.WithAnchor(routepath.About, "team")},
		{key: "nav.impact", path: routepath.Impact},
	}},
	{key: "nav.programs", path: routepath.Programs},
	{key: "nav.media", path: routepath.News, children: []navItem{
		{key: "nav.blogs", path: routepath.News},
		{key: "nav.events", path: routepath.Events},
		{key: "nav.gallery", path: routepath.Gallery},
		{key: "nav.resources", path: routepath.Resources},
	}},
	{key: "nav.contact", path: routepath.Contact},
}

var footerLinks = []navItem{
	{key: "nav.home", path: routepath.Root},
	{key: "nav.about", path: routepath.About},
	{key: "nav.programs", path: routepath.Programs},
	{key: "nav.blogs", path: routepath.News},
	{key: "nav.events", path: routepath.Events},
	{key: "nav.contact", path: routepath.Contact},
}

// isActivePath reports whether the current path belongs to a nav target.
// The home entry only matches the root itself.
func isActivePath(current string, target string) bool {
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	current = strings.TrimSpace(current)
	if current == "" {
		current = routepath.Root
	}
	if target == routepath.Root {
		return current == routepath.Root
	}
	return current == target || strings.HasPrefix(current, target+"/")
}

func (item navItem) active(current string) bool {
	if isActivePath(current, item.path) {
		return true
	}
	for _, child := range item.children {
		if isActivePath(current, child.path) {
			return true
		}
	}
	return false
}

// isCurrentPage reports whether the link points at the page being shown.
func isCurrentPage(current string, target string) bool {
	return strings.TrimSpace(current) == target
}
