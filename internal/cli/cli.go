package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vk/speccheck/internal/app"
	"github.com/vk/speccheck/internal/codecheck"
	"github.com/vk/speccheck/internal/hcl"
	"github.com/vk/speccheck/internal/linkcheck"
	"github.com/vk/speccheck/internal/sectioncheck"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// DefaultConfigFile is read from the working directory when --config is
// not given.
const DefaultConfigFile = "speccheck.hcl"

// options holds the persistent flags shared by every command.
type options struct {
	configPath    string
	root          string
	workers       int
	allMismatches bool
	logLevel      string
	logFormat     string
}

// Execute runs the command line given by args. Diagnostics go to outW,
// logs and errors to errW. The returned error, if any, is an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return toExitError(err)
	}
	return nil
}

// NewRootCommand builds the speccheck command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	// planFor returns a RunE running the plan chosen by choose.
	planFor := func(choose func(a *app.App) app.Plan) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, outW, errW, choose)
		}
	}
	checkAll := planFor(func(a *app.App) app.Plan {
		return app.Plan{Dependencies: true, Checks: a.EnabledChecks()}
	})

	root := &cobra.Command{
		Use:   "speccheck",
		Short: "Validate a corpus of numbered specification documents.",
		Long: `speccheck validates a corpus of interlinked standards laid out as
<root>/ics-<n>-<slug>/README.md. It checks that dependency declarations
agree, that the dependency graph is acyclic, and optionally that links
resolve, that documents follow the section template and that embedded code
type-checks.

Without a sub-command it runs "check".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          checkAll,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", fmt.Sprintf("Path to the HCL configuration file (default ./%s if present).", DefaultConfigFile))
	flags.StringVarP(&opts.root, "root", "r", "", "Corpus root directory, overrides corpus.root.")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of concurrent readers and parsers, overrides corpus.workers.")
	flags.BoolVar(&opts.allMismatches, "all-mismatches", false, "Report every one-sided dependency declaration instead of the first.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Run every enabled validation.",
			Args:  cobra.NoArgs,
			RunE:  checkAll,
		},
		&cobra.Command{
			Use:   "deps",
			Short: "Check dependency declarations and scan for cycles.",
			Args:  cobra.NoArgs,
			RunE: planFor(func(*app.App) app.Plan {
				return app.Plan{Dependencies: true}
			}),
		},
		&cobra.Command{
			Use:   "links",
			Short: "Check that cross-document links resolve.",
			Args:  cobra.NoArgs,
			RunE: planFor(func(*app.App) app.Plan {
				return app.Plan{Checks: []string{linkcheck.Name}}
			}),
		},
		&cobra.Command{
			Use:   "sections",
			Short: "Check documents against the section template.",
			Args:  cobra.NoArgs,
			RunE: planFor(func(*app.App) app.Plan {
				return app.Plan{Checks: []string{sectioncheck.Name}}
			}),
		},
		&cobra.Command{
			Use:   "syntax",
			Short: "Type-check embedded code together with the code of its dependencies.",
			Args:  cobra.NoArgs,
			RunE: planFor(func(*app.App) app.Plan {
				return app.Plan{Checks: []string{codecheck.Name}}
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the speccheck version.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "speccheck %s\n", Version)
				return err
			},
		},
	)
	return root
}

func run(ctx context.Context, opts *options, outW, errW io.Writer, choose func(a *app.App) app.Plan) error {
	configPath, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	slog.Debug("Configuration path determined.", "path", configPath)

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath:    configPath,
		Root:          opts.root,
		Workers:       opts.workers,
		AllMismatches: opts.allMismatches,
		LogFormat:     opts.logFormat,
		LogLevel:      opts.logLevel,
	})
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}

	a, err := app.NewApp(outW, errW, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}
	_, err = a.Run(ctx, choose(a))
	return err
}

// resolveConfigPath returns the explicit path, or DefaultConfigFile when it
// exists in the working directory, or "" for pure defaults.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	_, err := os.Stat(DefaultConfigFile)
	switch {
	case err == nil:
		return DefaultConfigFile, nil
	case errors.Is(err, os.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("failed to stat %s: %w", DefaultConfigFile, err)
	}
}
