package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
)

// NewMakeCRUDCommand creates the make-crud command
func NewMakeCRUDCommand(deps Dependencies, opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-crud <model-name>",
		Short: "Generate a CRUD data-access class for a model",
		Long: `Generate crud/<name>.py with a CRUD class whose create method fills the
slug from the natural key, an optional bulk_upload method, and a module-level
instance used by the routes.`,
		Example: `  fastapi-gen make-crud post
  fastapi-gen make-crud post --bulk-upload=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return missingName(cmd, "fastapi-gen make-crud <model-name>", opts.noColor)
			}

			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			defer s.close()

			_, err = runMakeCRUD(s, args[0])
			return err
		},
	}

	addCRUDFlags(cmd.Flags())
	addNaturalKeyFlag(cmd.Flags())

	return cmd
}

func runMakeCRUD(s *session, name string) (string, error) {
	entity, err := scaffold.NewEntityName(name)
	if err != nil {
		return "", err
	}

	crudOpts := s.cfg.CRUDOptions()
	doc, err := s.renderer.CRUD(entity, crudOpts)
	if err != nil {
		return "", err
	}

	s.logger.Debug("rendered crud",
		zap.String("entity", entity.Type()),
		zap.Bool("bulk_upload", crudOpts.BulkUpload),
		zap.String("slug_source", crudOpts.SlugSource))

	return s.write(doc)
}
