package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
)

// NewMakeControllerCommand creates the make-controller command
func NewMakeControllerCommand(deps Dependencies, opts *globalOptions) *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "make-controller [model-name]",
		Short: "Generate FastAPI route handlers for a model",
		Long: `Generate api/<name>.py with list, create, read, update and delete routes
for a model. The model name is prompted for when it is not given.

Optional import and export routes, the authorization mode and the
duplicate check on create are selected with flags or fastapi-gen.yaml.`,
		Example: `  fastapi-gen make-controller post
  fastapi-gen make-controller BlogPost --auth user --with-export
  fastapi-gen make-controller post --file posts_admin --conflict-check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			defer s.close()

			name := ""
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = s.prompter.Input("Enter the model name for this controller")
				if err != nil {
					return fmt.Errorf("failed to read model name: %w", err)
				}
			}
			if strings.TrimSpace(name) == "" {
				return errMissingModelName
			}

			_, err = runMakeController(s, name, fileName)
			return err
		},
	}

	cmd.Flags().StringVar(&fileName, "file", "", "Controller file name (default: the model name)")
	addControllerFlags(cmd.Flags())
	addNaturalKeyFlag(cmd.Flags())

	return cmd
}

func runMakeController(s *session, name, fileName string) (string, error) {
	entity, err := scaffold.NewEntityName(name)
	if err != nil {
		return "", err
	}

	controllerOpts := s.cfg.ControllerOptions()
	controllerOpts.FileName = fileName

	doc, err := s.renderer.Controller(entity, controllerOpts)
	if err != nil {
		return "", err
	}

	s.logger.Debug("rendered controller",
		zap.String("entity", entity.Type()),
		zap.String("auth", string(controllerOpts.Auth)),
		zap.Bool("import", controllerOpts.Import),
		zap.Bool("export", controllerOpts.Export))

	return s.write(doc)
}
