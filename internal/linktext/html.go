package linktext

import (
	"html/template"
	"strings"
)

// LinkClass is the class attribute put on every rendered anchor.
const LinkClass = "text-neon hover:text-white transition-colors underline"

// segmentsTmpl goes through html/template so hrefs get the same contextual
// sanitizing as the page templates: unsafe schemes become "#ZgotmplZ".
var segmentsTmpl = template.Must(template.New("annotated").Parse(
	`{{range .}}{{if .IsLink}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="` +
		LinkClass + `">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}}`))

// HTML renders the segments as inline markup. Text is escaped. Links open in
// a new browsing context and carry neither opener nor referrer.
func (a AnnotatedText) HTML() template.HTML {
	var b strings.Builder
	if err := segmentsTmpl.Execute(&b, a); err != nil {
		return template.HTML(template.HTMLEscapeString(a.PlainText()))
	}
	return template.HTML(b.String())
}
