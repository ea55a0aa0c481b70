package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedProperty is returned for property strings that are not key=value
var ErrMalformedProperty = errors.New("property must be in key=value form")

// FieldTypes are the type tags offered when prompting for a field type
var FieldTypes = []string{"str", "int", "float", "bool", "email", "datetime"}

// typeAnnotations maps type tags to the Python annotation emitted in models
var typeAnnotations = map[string]string{
	"str":      "str",
	"int":      "int",
	"float":    "float",
	"bool":     "bool",
	"email":    "EmailStr",
	"datetime": "datetime",
}

// Property is one key=value argument passed to a field's Field(...) call.
// Both halves are opaque text copied verbatim into the generated source.
type Property struct {
	Key   string
	Value string
}

func (p Property) String() string {
	return p.Key + "=" + p.Value
}

// FieldDescriptor describes one declared model field
type FieldDescriptor struct {
	Name       string
	Type       string
	Properties []Property
}

// KnownType reports whether tag is one of FieldTypes
func KnownType(tag string) bool {
	_, ok := typeAnnotations[tag]
	return ok
}

// Annotation returns the Python annotation for the field. Unrecognized type
// strings are passed through unchanged.
func (f FieldDescriptor) Annotation() string {
	if annotation, ok := typeAnnotations[f.Type]; ok {
		return annotation
	}
	return f.Type
}

// PropertyList renders the properties as a comma-joined key=value list
func (f FieldDescriptor) PropertyList() string {
	parts := make([]string, len(f.Properties))
	for i, p := range f.Properties {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// ParseProperty parses a key=value string. Only the first '=' separates key
// from value, so values such as sa_column_kwargs={"a": 1} survive intact.
func ParseProperty(s string) (Property, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return Property{}, fmt.Errorf("%w: %q", ErrMalformedProperty, s)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Property{}, fmt.Errorf("%w: %q has an empty key", ErrMalformedProperty, s)
	}
	return Property{Key: key, Value: strings.TrimSpace(value)}, nil
}

// setProperty appends p, or replaces the value in place when the key is already present
func setProperty(props []Property, p Property) []Property {
	for i := range props {
		if props[i].Key == p.Key {
			props[i].Value = p.Value
			return props
		}
	}
	return append(props, p)
}

// ParseFieldSpec parses the non-interactive form name:type[:key=value,...].
// A missing type defaults to str. Malformed properties are skipped and
// returned as warnings; only a missing field name is an error.
func ParseFieldSpec(spec string) (FieldDescriptor, []error, error) {
	parts := strings.SplitN(spec, ":", 3)

	field := FieldDescriptor{Name: strings.TrimSpace(parts[0]), Type: "str"}
	if field.Name == "" {
		return FieldDescriptor{}, nil, fmt.Errorf("field %q has no name", spec)
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		field.Type = strings.TrimSpace(parts[1])
	}

	var warnings []error
	if len(parts) == 3 {
		for _, raw := range strings.Split(parts[2], ",") {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			p, err := ParseProperty(raw)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("field %s: %w", field.Name, err))
				continue
			}
			field.Properties = setProperty(field.Properties, p)
		}
	}

	return field, warnings, nil
}
