package scaffold

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Prompter asks the operator for input. Implementations return an empty
// string when the operator just presses Enter.
type Prompter interface {
	Input(message string) (string, error)
	Select(message string, options []string) (string, error)
}

// Collector gathers field descriptors from the operator one prompt at a time
type Collector struct {
	prompter Prompter
	warn     func(message string)
	logger   *zap.Logger
}

// NewCollector creates a collector. warn receives operator-facing messages for
// input that was skipped; it may be nil.
func NewCollector(prompter Prompter, warn func(message string), logger *zap.Logger) *Collector {
	if warn == nil {
		warn = func(string) {}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{prompter: prompter, warn: warn, logger: logger}
}

// Collect prompts for fields until the operator enters an empty field name and
// returns them in entry order. The result may be empty.
func (c *Collector) Collect() ([]FieldDescriptor, error) {
	var fields []FieldDescriptor

	for {
		name, err := c.prompter.Input("Enter field name (or press Enter to finish)")
		if err != nil {
			return nil, fmt.Errorf("failed to read field name: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}

		fieldType, err := c.prompter.Select(fmt.Sprintf("Enter type for %s", name), FieldTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to read type for %s: %w", name, err)
		}

		props, err := c.collectProperties(name)
		if err != nil {
			return nil, err
		}

		field := FieldDescriptor{Name: name, Type: fieldType, Properties: props}
		c.logger.Debug("collected field",
			zap.String("name", field.Name),
			zap.String("type", field.Type),
			zap.String("properties", field.PropertyList()))
		fields = append(fields, field)
	}

	return fields, nil
}

func (c *Collector) collectProperties(fieldName string) ([]Property, error) {
	var props []Property
	message := fmt.Sprintf("Enter property for %s (e.g., default=None, or press Enter to finish)", fieldName)

	for {
		raw, err := c.prompter.Input(message)
		if err != nil {
			return nil, fmt.Errorf("failed to read property for %s: %w", fieldName, err)
		}
		if strings.TrimSpace(raw) == "" {
			return props, nil
		}

		p, err := ParseProperty(raw)
		if err != nil {
			c.warn(fmt.Sprintf("Skipping property for %s: %v", fieldName, err))
			continue
		}
		props = setProperty(props, p)
	}
}
