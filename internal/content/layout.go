package content

import "strings"

type MediaType string

const (
	MediaMovies MediaType = "movies"
	MediaBooks  MediaType = "books"
	MediaMusic  MediaType = "music"
)

// AspectClass is square for album art and 2:3 for posters and covers.
func (t MediaType) AspectClass() string {
	switch t {
	case MediaMusic:
		return "aspect-square"
	default:
		return "aspect-[2/3]"
	}
}

func (t MediaType) GridClass() string {
	switch t {
	case MediaMusic:
		return "grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-6"
	default:
		return "grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-5"
	}
}

type MediaShelf struct {
	Type  MediaType   `json:"type"`
	Title string      `json:"title"`
	Items []MediaItem `json:"items"`
}

// SpanClass maps a hobby tile's span tag to its grid placement.
func (h HobbyItem) SpanClass() string {
	switch h.Span {
	case "wide":
		return "md:col-span-2"
	case "tall":
		return "md:row-span-2"
	default:
		return ""
	}
}

// AssetPath resolves path against the site's base URL. Absolute http(s) URLs
// and paths already under base are returned as is.
func AssetPath(base, p string) string {
	if base == "" {
		base = "/"
	}
	if strings.HasPrefix(p, "http") || strings.HasPrefix(p, base) {
		return p
	}
	return base + strings.TrimPrefix(p, "/")
}
