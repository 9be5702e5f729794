package views

import (
	"errors"
	"fmt"
	"path"

	"github.com/goccy/go-yaml"
)

// Content is the copy for one landing page. Every theme presents the same
// sections; only headings and styling differ.
type Content struct {
	Title    string   `yaml:"title"`
	Brand    string   `yaml:"brand"`
	Nav      []Link   `yaml:"nav"`
	NavCTA   Link     `yaml:"nav_cta"`
	Hero     Hero     `yaml:"hero"`
	About    About    `yaml:"about"`
	Products Products `yaml:"products"`
	Contact  Contact  `yaml:"contact"`
	Privacy  Policy   `yaml:"privacy"`
	Support  Support  `yaml:"support"`
	Footer   Footer   `yaml:"footer"`
}

// Link is a labeled anchor. Absolute http(s) footer links open in a new tab.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Stat is a headline figure shown under the hero.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Hero is the opening section of a landing page.
type Hero struct {
	Label     string `yaml:"label"`
	Headline  string `yaml:"headline"`
	Highlight string `yaml:"highlight"`
	Lede      string `yaml:"lede"`
	Primary   Link   `yaml:"primary"`
	Secondary Link   `yaml:"secondary"`
	Stats     []Stat `yaml:"stats"`
}

// Feature is one titled point in the about section.
type Feature struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// About introduces the company.
type About struct {
	Label      string    `yaml:"label"`
	Heading    string    `yaml:"heading"`
	Paragraphs []string  `yaml:"paragraphs"`
	Features   []Feature `yaml:"features"`
}

// Product is one entry in the product grid.
type Product struct {
	Name    string   `yaml:"name"`
	Tagline string   `yaml:"tagline"`
	Status  string   `yaml:"status"`
	Body    string   `yaml:"body"`
	Tags    []string `yaml:"tags"`
	Link    Link     `yaml:"link"`
}

// Products is the product section with its optional closing quote.
type Products struct {
	Label   string    `yaml:"label"`
	Heading string    `yaml:"heading"`
	Intro   string    `yaml:"intro"`
	Items   []Product `yaml:"items"`
	Quote   string    `yaml:"quote"`
}

// Contact invites visitors to get in touch by email.
type Contact struct {
	Label   string `yaml:"label"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Email   string `yaml:"email"`
}

// Section is a headed block of body text.
type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Policy is the privacy section.
type Policy struct {
	Label    string    `yaml:"label"`
	Heading  string    `yaml:"heading"`
	Intro    string    `yaml:"intro"`
	Sections []Section `yaml:"sections"`
	Note     string    `yaml:"note"`
}

// Support lists help channels and the support email with its subject line.
type Support struct {
	Label    string    `yaml:"label"`
	Heading  string    `yaml:"heading"`
	Body     string    `yaml:"body"`
	Channels []Section `yaml:"channels"`
	Email    string    `yaml:"email"`
	Subject  string    `yaml:"subject"`
	Note     string    `yaml:"note"`
}

// Footer closes the page with the copyright line and footer links.
type Footer struct {
	Copyright string `yaml:"copyright"`
	Tagline   string `yaml:"tagline"`
	Links     []Link `yaml:"links"`
}

// loadContent decodes content/{name} from the embedded FS.
func loadContent(name string) (*Content, error) {
	raw, err := files.ReadFile(path.Join("content", name))
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", name, err)
	}

	var c Content
	if err := yaml.UnmarshalWithOptions(raw, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decoding content %s: %w", name, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", name, err)
	}
	return &c, nil
}

func (c *Content) validate() error {
	var errs []error
	if c.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if c.Hero.Headline == "" {
		errs = append(errs, errors.New("hero.headline is required"))
	}
	if c.Contact.Email == "" {
		errs = append(errs, errors.New("contact.email is required"))
	}
	return errors.Join(errs...)
}
