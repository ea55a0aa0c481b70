package commands

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/fastapi-gen/internal/cli/config"
	"github.com/conduit-lang/fastapi-gen/internal/cli/ui"
	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
	"github.com/conduit-lang/fastapi-gen/internal/templates"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// Dependencies holds the filesystem generated files are written to and the
// prompter used for interactive input
type Dependencies struct {
	Fs       afero.Fs
	Prompter scaffold.Prompter
}

// globalOptions holds the values of the persistent flags
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(Dependencies{
		Fs:       afero.NewOsFs(),
		Prompter: NewSurveyPrompter(),
	})
}

// NewRootCommandWith creates the root command with the given dependencies
func NewRootCommandWith(deps Dependencies) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "fastapi-gen",
		Short: "Scaffold FastAPI and SQLModel source files",
		Long: color.CyanString(`fastapi-gen - FastAPI/SQLModel scaffolding

Generates boilerplate Python modules for a web-application backend:
` + artifactSummary() + `
Defaults can be set in fastapi-gen.yaml or FASTAPI_GEN_* environment variables.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: ./fastapi-gen.yaml when present)")
	rootCmd.PersistentFlags().String("out", ".", "Base directory generated files are written under")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewMakeModelCommand(deps, opts))
	rootCmd.AddCommand(NewMakeControllerCommand(deps, opts))
	rootCmd.AddCommand(NewMakeCRUDCommand(deps, opts))
	rootCmd.AddCommand(NewMakeAllCommand(deps, opts))

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the fastapi-gen version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "fastapi-gen version: ")
			valueColor.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			valueColor.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			valueColor.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			valueColor.Fprintln(out, goVer)
		},
	}
}

// artifactSummary lists the generated files and what each one declares
func artifactSummary() string {
	registry, err := templates.NewBuiltinRegistry()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, tmpl := range registry.List() {
		fmt.Fprintf(&b, "  • %-18s %s\n", tmpl.Dir+"/<name>.py", tmpl.Description)
	}
	return b.String()
}

// session carries everything a make-* command needs for one invocation
type session struct {
	cfg      *config.Config
	logger   *zap.Logger
	renderer *scaffold.Renderer
	writer   *scaffold.Writer
	prompter scaffold.Prompter
	out      io.Writer
	errOut   io.Writer
	noColor  bool
}

func newSession(cmd *cobra.Command, deps Dependencies, opts *globalOptions) (*session, error) {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	renderer, err := scaffold.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("output_dir", cfg.OutputDir),
		zap.String("auth", cfg.Controller.Auth),
		zap.Bool("bulk_upload", cfg.CRUD.BulkUpload))

	return &session{
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
		writer:   scaffold.NewWriter(deps.Fs, cfg.OutputDir),
		prompter: deps.Prompter,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		noColor:  opts.noColor,
	}, nil
}

// write persists doc and reports the path it was written to
func (s *session) write(doc *scaffold.GeneratedDocument) (string, error) {
	target, err := s.writer.Write(doc)
	if err != nil {
		return "", err
	}
	s.logger.Debug("wrote document",
		zap.String("kind", string(doc.Kind)),
		zap.String("path", target),
		zap.Int("bytes", len(doc.Content)))
	ui.WriteSuccess(s.out, fmt.Sprintf("%s file created: %s", doc.Label, target), s.noColor)
	return target, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// Execute runs the root command
func Execute() error {
	return run(NewRootCommand())
}

// run executes rootCmd and prints its error unless the command already did
func run(rootCmd *cobra.Command) error {
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
