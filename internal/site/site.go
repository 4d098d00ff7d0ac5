// Package site loads the page-level settings: owner identity, navigation,
// section headings and the philosophy statement.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed defaults/site.toml defaults/philosophy.md
var defaults embed.FS

type NavLink struct {
	Href  string `toml:"href"`
	Label string `toml:"label"`
}

type Sections struct {
	Philosophy      string `toml:"philosophy"`
	Experience      string `toml:"experience"`
	ExperienceIntro string `toml:"experience_intro"`
	Bookshelf       string `toml:"bookshelf"`
	BookshelfIntro  string `toml:"bookshelf_intro"`
	Hobbies         string `toml:"hobbies"`
	HobbiesIntro    string `toml:"hobbies_intro"`
	Media           string `toml:"media"`
}

// Site is the decoded site.toml plus the rendered philosophy statement.
type Site struct {
	Name     string    `toml:"name"`
	Initials string    `toml:"initials"`
	Headline string    `toml:"headline"`
	Tagline  string    `toml:"tagline"`
	BaseURL  string    `toml:"base_url"`
	Footer   string    `toml:"footer"`
	Nav      []NavLink `toml:"nav"`
	Sections Sections  `toml:"sections"`

	// Philosophy is the statement rendered from philosophy.md.
	Philosophy template.HTML `toml:"-"`
}

// Load reads site settings from path, or the bundled defaults when path is
// empty. The philosophy statement always comes from the bundled markdown
// unless philosophyPath is set.
func Load(path, philosophyPath string) (*Site, error) {
	raw, err := readOrDefault(path, "defaults/site.toml")
	if err != nil {
		return nil, err
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	md, err := readOrDefault(philosophyPath, "defaults/philosophy.md")
	if err != nil {
		return nil, err
	}
	s.Philosophy, err = RenderMarkdown(md)
	if err != nil {
		return nil, fmt.Errorf("render philosophy: %w", err)
	}
	return s, nil
}

// Parse decodes site.toml content and fills in defaults.
func Parse(data []byte) (*Site, error) {
	var s Site
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, fmt.Errorf("decode site config: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("decode site config: name is required")
	}
	if s.BaseURL == "" {
		s.BaseURL = "/"
	}
	if s.Initials == "" {
		s.Initials = initials(s.Name)
	}
	return &s, nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// RenderMarkdown converts a markdown document to HTML.
func RenderMarkdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func readOrDefault(path, fallback string) ([]byte, error) {
	if path == "" {
		return defaults.ReadFile(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func initials(name string) string {
	var out []rune
	start := true
	for _, r := range name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}
