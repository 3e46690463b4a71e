package templates

// Option is a select choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// PhotoCard is one thumbnail linking to the lightbox.
type PhotoCard struct {
	ID    string
	Title string
	Image string
	URL   string
}

// PhotoGroup is a category heading with its photos.
type PhotoGroup struct {
	Name   string
	Photos []PhotoCard
}

// Lightbox is the enlarged photo with wraparound navigation.
type Lightbox struct {
	Title       string
	Description string
	Image       string
	Category    string
	Date        string
	PrevURL     string
	NextURL     string
	CloseURL    string
}

// GalleryView is the gallery page.
type GalleryView struct {
	Categories []Option
	Sorts      []Option
	Views      []Option
	Grouped    bool
	Groups     []PhotoGroup
	Photos     []PhotoCard
	Failed     bool
	Lightbox   *Lightbox
}
