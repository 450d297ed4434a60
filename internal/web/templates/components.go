package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed html/*.gohtml
var files embed.FS

var tmpl = template.Must(template.New("cloudbill").Funcs(funcs).ParseFS(files, "html/*.gohtml"))

// Dashboard renders the full page.
func Dashboard(p Page) templ.Component {
	return templ.FromGoHTML(tmpl.Lookup("page"), p)
}

// EventFragments renders the out-of-band swaps returned for an event.
// The sidebar is included only when f.Sidebar is set.
func EventFragments(f Fragments) templ.Component {
	f.Panels.OOB = true
	f.Panels.Display.OOB = f.Sidebar == nil
	if f.Sidebar != nil {
		sb := *f.Sidebar
		sb.OOB = true
		f.Sidebar = &sb
	}
	return templ.FromGoHTML(tmpl.Lookup("fragments"), f)
}
