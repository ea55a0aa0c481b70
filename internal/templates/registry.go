package templates

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the artifact templates known to the generator
type Registry struct {
	templates map[Kind]*Template
	mutex     sync.RWMutex
}

// NewRegistry creates a new template registry
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[Kind]*Template),
	}
}

// Register registers a template in the registry
func (r *Registry) Register(tmpl *Template) error {
	if err := tmpl.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.templates[tmpl.Kind]; exists {
		return fmt.Errorf("template %s already registered", tmpl.Kind)
	}

	r.templates[tmpl.Kind] = tmpl
	return nil
}

// Get retrieves a template by kind
func (r *Registry) Get(kind Kind) (*Template, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tmpl, exists := r.templates[kind]
	if !exists {
		return nil, fmt.Errorf("template %s not found", kind)
	}

	return tmpl, nil
}

// List returns all registered templates ordered by kind
func (r *Registry) List() []*Template {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	templates := make([]*Template, 0, len(r.templates))
	for _, tmpl := range r.templates {
		templates = append(templates, tmpl)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Kind < templates[j].Kind
	})

	return templates
}

// NewBuiltinRegistry returns a registry holding the model, CRUD and controller templates
func NewBuiltinRegistry() (*Registry, error) {
	builtins := []struct {
		kind        Kind
		label       string
		description string
		dir         string
		file        string
	}{
		{KindModel, "Model", "SQLModel base, create, update, table, public and list types", "models", "model.py.tmpl"},
		{KindCRUD, "Crud", "CRUDBase subclass with slug-aware create and bulk upload", "crud", "crud.py.tmpl"},
		{KindController, "Controller", "FastAPI router with list, create, read, update and delete", "api", "controller.py.tmpl"},
	}

	registry := NewRegistry()
	for _, b := range builtins {
		content, err := loadPython(b.file)
		if err != nil {
			return nil, err
		}
		tmpl := &Template{
			Kind:        b.kind,
			Label:       b.label,
			Description: b.description,
			Dir:         b.dir,
			Content:     content,
		}
		if err := registry.Register(tmpl); err != nil {
			return nil, fmt.Errorf("failed to register template %s: %w", b.kind, err)
		}
	}

	return registry, nil
}
