package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/fastapi-gen/internal/cli/ui"
	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
)

// NewMakeModelCommand creates the make-model command
func NewMakeModelCommand(deps Dependencies, opts *globalOptions) *cobra.Command {
	var fieldSpecs []string

	cmd := &cobra.Command{
		Use:   "make-model <name>",
		Short: "Generate a SQLModel data model",
		Long: `Generate models/<name>.py declaring the Base, Create, Update, table,
Public and list-wrapper classes for a model.

Fields are prompted for interactively until an empty field name is entered.
Each field takes a type and any number of key=value properties that are passed
to Field(...). Use --field to supply fields without prompting.

Field types: str, int, float, bool, email, datetime`,
		Example: `  fastapi-gen make-model post
  fastapi-gen make-model BlogPost --field title:str:max_length=255 --field published_at:datetime:default=None`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return missingName(cmd, "fastapi-gen make-model <name>", opts.noColor)
			}

			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			defer s.close()

			_, err = runMakeModel(s, args[0], fieldSpecs)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&fieldSpecs, "field", nil, "Field as name:type[:key=value,...] (repeatable, skips prompting)")

	return cmd
}

func runMakeModel(s *session, name string, fieldSpecs []string) (string, error) {
	entity, err := scaffold.NewEntityName(name)
	if err != nil {
		return "", err
	}

	var fields []scaffold.FieldDescriptor
	if len(fieldSpecs) > 0 {
		fields, err = parseFieldFlags(s, fieldSpecs)
	} else {
		fields, err = scaffold.NewCollector(s.prompter, s.warn, s.logger).Collect()
	}
	if err != nil {
		return "", err
	}

	doc, err := s.renderer.Model(entity, fields)
	if err != nil {
		return "", err
	}

	s.logger.Debug("rendered model",
		zap.String("entity", entity.Type()),
		zap.Int("fields", len(fields)),
		zap.Strings("symbols", entity.Symbols()))

	return s.write(doc)
}

// parseFieldFlags converts --field values into descriptors. Unknown types are
// kept as written; the operator only gets a warning with suggestions.
func parseFieldFlags(s *session, specs []string) ([]scaffold.FieldDescriptor, error) {
	fields := make([]scaffold.FieldDescriptor, 0, len(specs))

	for _, spec := range specs {
		field, warnings, err := scaffold.ParseFieldSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid --field: %w", err)
		}
		for _, w := range warnings {
			s.warn(fmt.Sprintf("Skipping property: %v", w))
		}
		if !scaffold.KnownType(field.Type) {
			suggestions := ui.FindSimilar(field.Type, scaffold.FieldTypes, 0)
			fmt.Fprint(s.errOut, ui.UnknownFieldTypeWarning(field.Name, field.Type, suggestions, s.noColor))
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// warn prints an operator-facing warning
func (s *session) warn(message string) {
	fmt.Fprint(s.errOut, ui.Warning(message, s.noColor))
}
