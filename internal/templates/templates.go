package templates

import (
	"context"
	"html/template"
	"io"
)

// Component represents a template component that can be rendered
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplateComponent implements Component interface for html/template rendering
type TemplateComponent struct {
	Template *template.Template
	Data     interface{}
}

// Render renders the template component to the writer
func (tc *TemplateComponent) Render(ctx context.Context, w io.Writer) error {
	return tc.Template.Execute(w, tc.Data)
}

// ComponentFromString is a helper to create template components from string templates
func ComponentFromString(tmplStr string, data interface{}) Component {
	tmpl := template.Must(template.New("inline").Parse(tmplStr))
	return &TemplateComponent{
		Template: tmpl,
		Data:     data,
	}
}
