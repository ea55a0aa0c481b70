package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/fastapi-gen/internal/cli/ui"
)

// NewMakeAllCommand creates the make:all command
func NewMakeAllCommand(deps Dependencies, opts *globalOptions) *cobra.Command {
	var fieldSpecs []string

	cmd := &cobra.Command{
		Use:     "make:all <name>",
		Aliases: []string{"make-all"},
		Short:   "Generate the model, controller and CRUD files for a model",
		Long: `Run make-model, make-controller and make-crud for one name, in that order.

Files written before a failing step are left in place.`,
		Example: `  fastapi-gen make:all post
  fastapi-gen make-all BlogPost --field title:str --with-import`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return missingName(cmd, "fastapi-gen make:all <name>", opts.noColor)
			}
			name := args[0]

			s, err := newSession(cmd, deps, opts)
			if err != nil {
				return err
			}
			defer s.close()

			info := color.New(color.FgCyan)
			if opts.noColor {
				info.DisableColor()
			}
			info.Fprintf(s.out, "Creating model and controller for %s\n", name)

			table := ui.NewTable(s.out, []string{"Artifact", "Path"}, opts.noColor)

			modelPath, err := runMakeModel(s, name, fieldSpecs)
			if err != nil {
				return fmt.Errorf("make-model failed: %w", err)
			}
			table.AddRow("Model", modelPath)

			controllerPath, err := runMakeController(s, name, "")
			if err != nil {
				return fmt.Errorf("make-controller failed: %w", err)
			}
			table.AddRow("Controller", controllerPath)

			crudPath, err := runMakeCRUD(s, name)
			if err != nil {
				return fmt.Errorf("make-crud failed: %w", err)
			}
			table.AddRow("Crud", crudPath)

			fmt.Fprintln(s.out)
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fieldSpecs, "field", nil, "Field as name:type[:key=value,...] (repeatable, skips prompting)")
	addControllerFlags(cmd.Flags())
	addCRUDFlags(cmd.Flags())
	addNaturalKeyFlag(cmd.Flags())

	return cmd
}
