// Package scaffold turns an entity name and its field definitions into the
// generated model, CRUD and controller documents of a FastAPI backend.
package scaffold

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	utilstrings "github.com/conduit-lang/fastapi-gen/internal/util/strings"
)

// ErrEmptyEntityName is returned when a blank entity name reaches a renderer
var ErrEmptyEntityName = errors.New("entity name is required")

// ErrInvalidEntityName is returned for names whose generated symbols would not
// be valid Python identifiers
var ErrInvalidEntityName = errors.New("entity name must start with a letter")

// EntityName is the canonical name of the scaffolded entity as typed by the
// operator. Every derived form is recomputed from it on demand so the model,
// CRUD and controller documents always agree on symbol names.
type EntityName string

// NewEntityName validates raw and returns it as an EntityName
func NewEntityName(raw string) (EntityName, error) {
	name := EntityName(strings.TrimSpace(raw))
	if err := name.Validate(); err != nil {
		return "", err
	}
	return name, nil
}

// Validate reports whether every derived form is a usable Python identifier
func (n EntityName) Validate() error {
	t := n.Type()
	if t == "" {
		return ErrEmptyEntityName
	}
	if !unicode.IsLetter([]rune(t)[0]) {
		return fmt.Errorf("%w: %q", ErrInvalidEntityName, string(n))
	}
	return nil
}

// Type is the PascalCase singular form (BlogPost)
func (n EntityName) Type() string {
	return utilstrings.ToPascalCase(string(n))
}

// Module is the lowercase singular form used for file, module and variable names (blog_post)
func (n EntityName) Module() string {
	return utilstrings.ToSnakeCase(n.Type())
}

// Collection is the lowercase plural form (blog_posts)
func (n EntityName) Collection() string {
	return utilstrings.Pluralize(n.Module())
}

// ListType is the PascalCase plural form (BlogPosts). Words whose plural is
// the singular get a List suffix (NewsList) so <ListType>Public never
// collides with <Type>Public.
func (n EntityName) ListType() string {
	t := n.Type()
	if plural := utilstrings.Pluralize(t); plural != t {
		return plural
	}
	return t + "List"
}

// Symbols returns every Python symbol the generated documents share for this entity
func (n EntityName) Symbols() []string {
	t := n.Type()
	return []string{
		t,
		t + "Create",
		t + "Update",
		t + "Public",
		n.ListType() + "Public",
		"CRUD" + t,
		n.Module(),
	}
}

func (n EntityName) String() string {
	return string(n)
}
