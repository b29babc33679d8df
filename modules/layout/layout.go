// Package layout provides the shared page shell for all HTML pages.
package layout

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"io"

	"github.com/pitchside/pitchside/internal/templates"
)

//go:embed view.html
var viewHTML string

var viewTemplate = template.Must(template.New("view").Parse(viewHTML))

type ViewData struct {
	Title   string
	Content template.HTML
}

// View wraps a page body in the standard layout.
func View(title string, content templates.Component) templates.Component {
	return &layoutComponent{title: title, content: content}
}

type layoutComponent struct {
	title   string
	content templates.Component
}

func (lc *layoutComponent) Render(ctx context.Context, w io.Writer) error {
	var contentBuf bytes.Buffer
	if err := lc.content.Render(ctx, &contentBuf); err != nil {
		return err
	}

	data := ViewData{
		Title:   lc.title,
		Content: template.HTML(contentBuf.String()),
	}
	return viewTemplate.Execute(w, data)
}
