// Package content holds the read models returned by the content API and the
// list operations pages apply to them.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID is a content API identifier. The API sends integers today; strings are
// accepted so identifiers survive a backend switch to slugs or UUIDs.
type ID string

// UnmarshalJSON accepts JSON numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(raw))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(number.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string { return string(id) }

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Date is a calendar date or timestamp as the API formats it.
type Date struct {
	time.Time
}

// ParseDate parses any of the layouts the content API emits.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return Date{Time: parsed}, nil
		}
	}
	return Date{}, fmt.Errorf("unsupported date %q", raw)
}

// UnmarshalJSON accepts null, empty strings and the layouts in ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode date: %w", err)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON writes RFC 3339, or null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

// Category groups blog posts and gallery items.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryRef is a category embedded in another record. The API may nest the
// whole category, send only its name, or send only its primary key.
type CategoryRef struct {
	Category
	Set bool
}

// UnmarshalJSON accepts an object, a string name, a number id, or null.
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = CategoryRef{}
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '{':
		if err := json.Unmarshal(data, &c.Category); err != nil {
			return fmt.Errorf("decode category: %w", err)
		}
	case data[0] == '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("decode category name: %w", err)
		}
		c.Name = strings.TrimSpace(name)
	default:
		if err := c.ID.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("decode category id: %w", err)
		}
	}
	c.Set = c.Name != "" || c.Slug != "" || c.ID != ""
	return nil
}

// MarshalJSON writes the nested category object, or null when unset.
func (c CategoryRef) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Category)
}

// Label returns the display name of the category, falling back to the slug
// and then the id.
func (c CategoryRef) Label() string {
	switch {
	case strings.TrimSpace(c.Name) != "":
		return strings.TrimSpace(c.Name)
	case strings.TrimSpace(c.Slug) != "":
		return strings.TrimSpace(c.Slug)
	default:
		return c.ID.String()
	}
}

// BlogPost is one news article.
type BlogPost struct {
	ID            ID          `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Author        string      `json:"author"`
	Category      CategoryRef `json:"category"`
	Content       string      `json:"content"`
	Excerpt       string      `json:"excerpt"`
	Image         string      `json:"image"`
	PublishedDate Date        `json:"published_date"`
}

// Event is a scheduled foundation event.
type Event struct {
	ID               ID     `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	EventDate        Date   `json:"event_date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Image            string `json:"image"`
	RegistrationLink string `json:"registration_link"`
}

// GalleryItem is one photo in the gallery.
type GalleryItem struct {
	ID          ID          `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Category    CategoryRef `json:"category"`
	UploadDate  Date        `json:"upload_date"`
	IsPublished bool        `json:"is_published"`
}

// Resource is a downloadable document.
type Resource struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
	IsPublic    bool   `json:"is_public"`
}

// TeamMember is a staff or board profile.
type TeamMember struct {
	ID             ID     `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
	Email          string `json:"email"`
	LinkedInURL    string `json:"linkedin_url"`
	TwitterURL     string `json:"twitter_url"`
}

// ImpactStat is a headline figure such as "50K+ lives reached".
type ImpactStat struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// CounterTarget extracts the digits of Value for an animated counter. The
// second result is false when Value holds no digit.
func (s ImpactStat) CounterTarget() (int64, bool) {
	var digits strings.Builder
	for _, r := range s.Value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TransformationStory is a beneficiary testimonial.
type TransformationStory struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Story    string `json:"story"`
	ImageURL string `json:"image_url"`
}

// BlogPostQuery narrows a blog post listing.
type BlogPostQuery struct {
	Search       string
	CategorySlug string
	Limit        int
}

// EventQuery narrows an event listing.
type EventQuery struct {
	Limit int
}
