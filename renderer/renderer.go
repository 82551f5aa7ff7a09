// Package renderer renders portfolio reports to markdown strings.
// The command layer decides how to display them (typically through a
// terminal markdown renderer).
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate renders one of the embedded templates with data.
// Template problems are rendered into the output rather than returned:
// they are programming errors and showing them beats hiding them.
func renderTemplate(name string, data any) string {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}
	tmpl, err := template.New(name).Funcs(funcs()).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
