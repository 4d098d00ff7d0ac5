// Package linktext turns free-form blurbs containing [label](url) spans into
// an ordered sequence of plain-text and link segments.
//
// Only that one inline construct is recognized. Anything else, including
// unmatched brackets, stays literal text.
package linktext

import (
	"regexp"
	"strings"
)

// Kind tags a Segment as text or link.
type Kind int

const (
	KindText Kind = iota
	KindLink
)

func (k Kind) String() string {
	if k == KindLink {
		return "link"
	}
	return "text"
}

// MarshalText lets Kind appear as "text" or "link" in JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is one unit of annotated output. For a link, Text holds the label.
type Segment struct {
	Kind Kind   `json:"type"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// Text returns a literal text segment.
func Text(content string) Segment {
	return Segment{Kind: KindText, Text: content}
}

// Link returns a link segment.
func Link(label, url string) Segment {
	return Segment{Kind: KindLink, Text: label, URL: url}
}

func (s Segment) IsLink() bool { return s.Kind == KindLink }

// AnnotatedText is the result of scanning one input string.
type AnnotatedText []Segment

// linkPattern matches [label](url). Label excludes ']' and url excludes ')';
// either may be empty.
var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

// Render scans input left to right and splits it into text and link
// segments. It never fails: malformed syntax is returned as text. Empty input
// yields an empty AnnotatedText.
func Render(input string) AnnotatedText {
	if input == "" {
		return AnnotatedText{}
	}

	matches := linkPattern.FindAllStringSubmatchIndex(input, -1)
	out := make(AnnotatedText, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			out = append(out, Text(input[last:m[0]]))
		}
		out = append(out, Link(input[m[2]:m[3]], input[m[4]:m[5]]))
		last = m[1]
	}
	if last < len(input) {
		out = append(out, Text(input[last:]))
	}
	return out
}

// Source rebuilds the string Render was called with.
func (a AnnotatedText) Source() string {
	var b strings.Builder
	for _, s := range a {
		if s.IsLink() {
			b.WriteByte('[')
			b.WriteString(s.Text)
			b.WriteString("](")
			b.WriteString(s.URL)
			b.WriteByte(')')
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// PlainText is the visible text: link labels without any syntax.
func (a AnnotatedText) PlainText() string {
	var b strings.Builder
	for _, s := range a {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Links returns only the link segments, in input order.
func (a AnnotatedText) Links() []Segment {
	var links []Segment
	for _, s := range a {
		if s.IsLink() {
			links = append(links, s)
		}
	}
	return links
}
