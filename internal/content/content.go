// Package content holds the portfolio's bundled data: experience timeline,
// bookshelf, hobbies and media shelves.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/bhudelson/portfolio/internal/linktext"
)

//go:embed data/*.json
var bundled embed.FS

// Bundled returns the content files compiled into the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

type TimelineItem struct {
	Date        string `json:"date" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=sprint marathon"`
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description" validate:"required"`
}

func (t TimelineItem) IsSprint() bool { return t.Type == "sprint" }

// Badge is the label shown above the entry.
func (t TimelineItem) Badge() string {
	if t.IsSprint() {
		return "Sprint"
	}
	return "Marathon"
}

type Book struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Cover         string `json:"cover" validate:"required"`
	CoverOverride string `json:"coverOverride,omitempty"`
	Quote         string `json:"quote,omitempty"`
	Why           string `json:"why,omitempty"`
	Featured      bool   `json:"featured,omitempty"`
}

// CoverSrc prefers the local override over the default cover.
func (b Book) CoverSrc() string {
	if b.CoverOverride != "" {
		return b.CoverOverride
	}
	return b.Cover
}

type HobbyItem struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Trait string `json:"trait" validate:"required"`
	Image string `json:"image,omitempty"`
	Span  string `json:"span,omitempty" validate:"omitempty,oneof=normal wide tall"`
}

type MediaItem struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Artist string `json:"artist,omitempty"`
	Poster string `json:"poster" validate:"required"`
	Quote  string `json:"quote"`
	Blurb  string `json:"blurb"`
}

// Annotated splits the blurb into text and link segments.
func (m MediaItem) Annotated() linktext.AnnotatedText {
	return linktext.Render(m.Blurb)
}

// Content is everything the page renders.
type Content struct {
	Experience []TimelineItem `json:"experience"`
	Books      []Book         `json:"books"`
	Hobbies    []HobbyItem    `json:"hobbies"`
	Movies     []MediaItem    `json:"movies"`
	BooksMedia []MediaItem    `json:"booksMedia"`
	Music      []MediaItem    `json:"music"`
}

// LoadContent decodes and validates every content file in fsys.
func LoadContent(fsys fs.FS) (*Content, error) {
	c := &Content{}
	files := []struct {
		name string
		dst  any
	}{
		{"experience.json", &c.Experience},
		{"books.json", &c.Books},
		{"hobbies.json", &c.Hobbies},
		{"movies.json", &c.Movies},
		{"books.media.json", &c.BooksMedia},
		{"music.json", &c.Music},
	}

	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	for i, item := range c.Experience {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("experience.json[%d]: %w", i, err)
		}
	}
	for i, item := range c.Books {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("books.json[%d]: %w", i, err)
		}
	}
	for i, item := range c.Hobbies {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("hobbies.json[%d]: %w", i, err)
		}
	}
	for _, shelf := range []struct {
		name  string
		items []MediaItem
	}{
		{"movies.json", c.Movies},
		{"books.media.json", c.BooksMedia},
		{"music.json", c.Music},
	} {
		for i, item := range shelf.items {
			if err := validateItem(item); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", shelf.name, i, err)
			}
		}
	}
	return c, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, path.Clean(name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// PartitionBooks splits books into featured and library shelves, keeping
// their original order.
func PartitionBooks(books []Book) (featured, library []Book) {
	for _, b := range books {
		if b.Featured {
			featured = append(featured, b)
		} else {
			library = append(library, b)
		}
	}
	return featured, library
}

// Shelves returns the non-empty media shelves in display order.
func (c *Content) Shelves() []MediaShelf {
	all := []MediaShelf{
		{Type: MediaMovies, Title: "Movies", Items: c.Movies},
		{Type: MediaBooks, Title: "Books", Items: c.BooksMedia},
		{Type: MediaMusic, Title: "Music", Items: c.Music},
	}
	shelves := make([]MediaShelf, 0, len(all))
	for _, s := range all {
		if len(s.Items) > 0 {
			shelves = append(shelves, s)
		}
	}
	return shelves
}

// LinkRef is an annotated link found in a media blurb.
type LinkRef struct {
	Shelf  MediaType `json:"shelf"`
	ItemID string    `json:"item_id"`
	Label  string    `json:"label"`
	URL    string    `json:"url"`
}

// Links collects every annotated link across all media blurbs.
func (c *Content) Links() []LinkRef {
	var refs []LinkRef
	for _, shelf := range c.Shelves() {
		for _, item := range shelf.Items {
			for _, l := range item.Annotated().Links() {
				refs = append(refs, LinkRef{
					Shelf:  shelf.Type,
					ItemID: item.ID,
					Label:  l.Text,
					URL:    l.URL,
				})
			}
		}
	}
	return refs
}
