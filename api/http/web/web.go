// Package web renders the landing page.
package web

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/jobs"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Page is the data the landing template needs. Jobs are rendered as JS values inside <script>.
type Page struct {
	Title    string
	Jobs     []jobs.Job
	PaidJobs []jobs.Job
	Pages    int
}

// Render writes the landing page. Nil job lists are rendered as [] so the front end never sees null.
func Render(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = "nocsdegree"
	}
	if p.Jobs == nil {
		p.Jobs = []jobs.Job{}
	}
	if p.PaidJobs == nil {
		p.PaidJobs = []jobs.Job{}
	}
	return index.Execute(w, p)
}
