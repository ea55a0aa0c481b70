package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Kind identifies the artifact a template produces
type Kind string

const (
	KindModel      Kind = "model"
	KindCRUD       Kind = "crud"
	KindController Kind = "controller"
)

//go:embed python/*.tmpl
var pythonFS embed.FS

// Template describes how one artifact kind is rendered and where it is written
type Template struct {
	Kind        Kind
	Label       string // used in console output, e.g. "Model file created"
	Description string
	Dir         string // output directory relative to the project root
	Content     string
}

// Engine is the template rendering engine
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a new template engine with the sprig function map
func NewEngine() *Engine {
	funcs := sprig.TxtFuncMap()
	funcs["pyComment"] = func(s string) string { return "# " + s }
	return &Engine{funcs: funcs}
}

// Render executes the template against data and returns the rendered text.
// Missing keys are an error.
func (e *Engine) Render(tmpl *Template, data any) (string, error) {
	t, err := template.New(string(tmpl.Kind)).
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(tmpl.Content)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", tmpl.Kind, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Kind, err)
	}

	return buf.String(), nil
}

// Validate validates a template structure
func (t *Template) Validate() error {
	if t.Kind == "" {
		return fmt.Errorf("template kind is required")
	}
	if t.Dir == "" {
		return fmt.Errorf("output directory is required for %s template", t.Kind)
	}
	if path.IsAbs(t.Dir) {
		return fmt.Errorf("output directory for %s template must be relative, got %s", t.Kind, t.Dir)
	}
	if t.Content == "" {
		return fmt.Errorf("content is required for %s template", t.Kind)
	}
	return nil
}

// loadPython reads an embedded Python template by file name
func loadPython(name string) (string, error) {
	content, err := pythonFS.ReadFile("python/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return string(content), nil
}
