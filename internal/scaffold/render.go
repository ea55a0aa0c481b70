package scaffold

import (
	"fmt"
	"path"

	"github.com/conduit-lang/fastapi-gen/internal/templates"
)

// AuthMode selects which dependency guards the generated routes
type AuthMode string

const (
	// AuthSuperuser restricts mutating routes to active superusers
	AuthSuperuser AuthMode = "superuser"
	// AuthUser lets any authenticated user call every route
	AuthUser AuthMode = "user"
)

// DefaultNaturalKey is the field used for slugs and duplicate detection
const DefaultNaturalKey = "name"

// CRUDOptions selects the optional parts of the CRUD document
type CRUDOptions struct {
	BulkUpload bool
	SlugSource string
}

// ControllerOptions selects the optional parts of the controller document
type ControllerOptions struct {
	Auth          AuthMode
	ConflictCheck bool
	NaturalKey    string
	Import        bool
	Export        bool
	PerPage       int
	// FileName overrides the controller file name; defaults to the entity module name
	FileName string
}

// GeneratedDocument is the rendered text of one artifact and the path it is
// written to, relative to the output directory
type GeneratedDocument struct {
	Kind    templates.Kind
	Label   string
	Path    string
	Content string
}

// Renderer renders entity documents from the builtin templates
type Renderer struct {
	engine   *templates.Engine
	registry *templates.Registry
}

// NewRenderer creates a renderer backed by the builtin template registry
func NewRenderer() (*Renderer, error) {
	registry, err := templates.NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}
	return &Renderer{engine: templates.NewEngine(), registry: registry}, nil
}

type modelData struct {
	Entity EntityName
	Fields []FieldDescriptor
}

// Uses reports whether any field has the given type tag
func (d modelData) Uses(tag string) bool {
	for _, f := range d.Fields {
		if f.Type == tag {
			return true
		}
	}
	return false
}

type crudData struct {
	Entity     EntityName
	BulkUpload bool
	SlugSource string
}

type controllerData struct {
	Entity        EntityName
	Superuser     bool
	ConflictCheck bool
	NaturalKey    string
	Import        bool
	Export        bool
	PerPage       int
}

// Model renders the SQLModel declarations for entity. fields may be empty.
func (r *Renderer) Model(entity EntityName, fields []FieldDescriptor) (*GeneratedDocument, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	return r.render(templates.KindModel, entity.Module(), modelData{Entity: entity, Fields: fields})
}

// CRUD renders the data-access class and its module-level singleton
func (r *Renderer) CRUD(entity EntityName, opts CRUDOptions) (*GeneratedDocument, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	data := crudData{
		Entity:     entity,
		BulkUpload: opts.BulkUpload,
		SlugSource: orDefault(opts.SlugSource, DefaultNaturalKey),
	}
	return r.render(templates.KindCRUD, entity.Module(), data)
}

// Controller renders the FastAPI router for entity
func (r *Renderer) Controller(entity EntityName, opts ControllerOptions) (*GeneratedDocument, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	switch opts.Auth {
	case AuthSuperuser, AuthUser:
	case "":
		opts.Auth = AuthSuperuser
	default:
		return nil, fmt.Errorf("unknown auth mode %q", opts.Auth)
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 20
	}

	fileName := entity.Module()
	if opts.FileName != "" {
		custom, err := NewEntityName(opts.FileName)
		if err != nil {
			return nil, fmt.Errorf("invalid controller file name: %w", err)
		}
		fileName = custom.Module()
	}

	data := controllerData{
		Entity:        entity,
		Superuser:     opts.Auth == AuthSuperuser,
		ConflictCheck: opts.ConflictCheck,
		NaturalKey:    orDefault(opts.NaturalKey, DefaultNaturalKey),
		Import:        opts.Import,
		Export:        opts.Export,
		PerPage:       opts.PerPage,
	}
	return r.render(templates.KindController, fileName, data)
}

func (r *Renderer) render(kind templates.Kind, fileName string, data any) (*GeneratedDocument, error) {
	tmpl, err := r.registry.Get(kind)
	if err != nil {
		return nil, err
	}

	content, err := r.engine.Render(tmpl, data)
	if err != nil {
		return nil, err
	}

	return &GeneratedDocument{
		Kind:    kind,
		Label:   tmpl.Label,
		Path:    path.Join(tmpl.Dir, fileName+".py"),
		Content: content,
	}, nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
