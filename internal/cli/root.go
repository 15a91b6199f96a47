package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shipdeps/pkg/buildinfo"
	"github.com/matzehuels/shipdeps/pkg/config"
)

// Execute runs the shipdeps CLI and returns an error if the run fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &runOpts{}

	root := &cobra.Command{
		Use:   "shipdeps [flags] EXECUTABLE",
		Short: "Stage the shared libraries an executable depends on",
		Long: `shipdeps copies the shared libraries required by an executable into a
destination directory. Libraries can be excluded by glob pattern. If a
library is excluded then all its dependencies are excluded too, unless a
non-excluded library also depends on them.`,
		Args:          cobra.ExactArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts, cmd.Flags().Changed)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVarP(&opts.destDir, "destdir", "d", "", "copy to this directory (default: the executable's directory)")
	root.Flags().StringVar(&opts.excludeFile, "exclude", "", "do not copy libraries whose name matches a line from this file")
	root.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "simulate, copy nothing")
	root.Flags().StringVar(&opts.dotPath, "dot", "", "write a Graphviz graph of the dependencies to this file")
	root.Flags().StringVar(&opts.render, "render", "", "also render the graph: svg or png (requires --dot)")
	root.Flags().StringVar(&opts.configFile, "config", "", "defaults file (default: "+config.DefaultFile+" if present)")

	return root.ExecuteContext(ctx)
}
