package templates

// CategoryOption is one entry of the news category filter.
type CategoryOption struct {
	Slug     string
	Name     string
	Selected bool
}

// NewsListView is the blog listing.
type NewsListView struct {
	Search     string
	Categories []CategoryOption
	Posts      []PostCard
	Failed     bool
}

// NewsPostView is one blog post. BodyHTML is already sanitized.
type NewsPostView struct {
	Title    string
	Author   string
	Date     string
	Category string
	Image    string
	BodyHTML string
}
