// Package sitecontent loads the static copy of the site: hero slides,
// program descriptions, organization details and form choices. The copy is
// an embedded YAML document so editors can change wording without touching
// templates.
package sitecontent

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed site.yaml
var defaultDocument []byte

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Contact holds the organization's postal and phone details.
type Contact struct {
	Address     []string `yaml:"address"`
	Phone       string   `yaml:"phone"`
	PhoneFooter string   `yaml:"phone_footer"`
	PhoneHref   string   `yaml:"phone_href"`
	Email       string   `yaml:"email"`
}

// HeroSlide is one slide of the homepage carousel.
type HeroSlide struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Mission     string `yaml:"mission"`
	Image       string `yaml:"image"`
}

// Highlight is a headline figure shown on the homepage.
type Highlight struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Testimonial is a short quote with attribution.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

type Home struct {
	IntroTitle  string      `yaml:"intro_title"`
	Intro       string      `yaml:"intro"`
	Highlights  []Highlight `yaml:"highlights"`
	Testimonial Testimonial `yaml:"testimonial"`
	CTAIntro    string      `yaml:"cta_intro"`
}

type About struct {
	Tagline string   `yaml:"tagline"`
	Image   string   `yaml:"image"`
	Roots   []string `yaml:"roots"`
	Mission string   `yaml:"mission"`
	Vision  string   `yaml:"vision"`
	Values  string   `yaml:"values"`
}

// Pillar is one principle of the programs approach.
type Pillar struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type ProgramsPage struct {
	Tagline       string   `yaml:"tagline"`
	ApproachTitle string   `yaml:"approach_title"`
	Approach      string   `yaml:"approach"`
	Pillars       []Pillar `yaml:"pillars"`
}

// Program is one foundation program. ID doubles as the page anchor.
type Program struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Activities  []string `yaml:"activities"`
	Conclusion  string   `yaml:"conclusion"`
	Image       string   `yaml:"image"`
	CTA         Link     `yaml:"cta"`
}

type ImpactPage struct {
	Tagline    string `yaml:"tagline"`
	IntroTitle string `yaml:"intro_title"`
	Intro      string `yaml:"intro"`
}

type ContactPage struct {
	DetailsIntro   string `yaml:"details_intro"`
	VolunteerIntro string `yaml:"volunteer_intro"`
	PartnerIntro   string `yaml:"partner_intro"`
	MapTitle       string `yaml:"map_title"`
	MapIntro       string `yaml:"map_intro"`
	MapURL         string `yaml:"map_url"`
}

// Site is the full static copy document.
type Site struct {
	Name             string       `yaml:"name"`
	Tagline          string       `yaml:"tagline"`
	Description      string       `yaml:"description"`
	Contact          Contact      `yaml:"contact"`
	Social           []Link       `yaml:"social"`
	Hero             []HeroSlide  `yaml:"hero"`
	Home             Home         `yaml:"home"`
	About            About        `yaml:"about"`
	ProgramsPage     ProgramsPage `yaml:"programs_page"`
	Programs         []Program    `yaml:"programs"`
	ImpactPage       ImpactPage   `yaml:"impact_page"`
	ContactPage      ContactPage  `yaml:"contact_page"`
	VolunteerAreas   []string     `yaml:"volunteer_areas"`
	PartnershipTypes []string     `yaml:"partnership_types"`
}

// Default returns the embedded copy. The document is validated by tests, so
// a decode failure here is a build defect.
func Default() Site {
	site, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("sitecontent: embedded document: %v", err))
	}
	return site
}

// Parse decodes and validates a site document. Unknown keys are rejected.
func Parse(data []byte) (Site, error) {
	var site Site
	if err := yaml.UnmarshalStrict(data, &site); err != nil {
		return Site{}, fmt.Errorf("decode site copy: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate checks the fields pages rely on.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("site name is required")
	}
	if strings.TrimSpace(s.Contact.Email) == "" {
		return fmt.Errorf("contact email is required")
	}
	if len(s.Hero) == 0 {
		return fmt.Errorf("at least one hero slide is required")
	}
	seen := make(map[string]struct{}, len(s.Programs))
	for i, program := range s.Programs {
		id := strings.TrimSpace(program.ID)
		if id == "" {
			return fmt.Errorf("program %d: id is required", i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("program %q: duplicate id", id)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(program.Title) == "" {
			return fmt.Errorf("program %q: title is required", id)
		}
	}
	if len(s.VolunteerAreas) == 0 {
		return fmt.Errorf("volunteer areas are required")
	}
	if len(s.PartnershipTypes) == 0 {
		return fmt.Errorf("partnership types are required")
	}
	return nil
}

// Program returns the program with the given anchor id.
func (s Site) Program(id string) (Program, bool) {
	for _, program := range s.Programs {
		if program.ID == id {
			return program, true
		}
	}
	return Program{}, false
}

// HasVolunteerArea reports whether area is one of the offered choices.
func (s Site) HasVolunteerArea(area string) bool {
	return containsFold(s.VolunteerAreas, area)
}

// HasPartnershipType reports whether kind is one of the offered choices.
func (s Site) HasPartnershipType(kind string) bool {
	return containsFold(s.PartnershipTypes, kind)
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
