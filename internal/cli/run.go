package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/shipdeps/pkg/config"
	"github.com/matzehuels/shipdeps/pkg/deptree"
	"github.com/matzehuels/shipdeps/pkg/errors"
	"github.com/matzehuels/shipdeps/pkg/exclude"
	"github.com/matzehuels/shipdeps/pkg/fscopy"
	"github.com/matzehuels/shipdeps/pkg/graphio"
	"github.com/matzehuels/shipdeps/pkg/ldd"
)

// runOpts holds the command-line flags for the shipdeps run.
type runOpts struct {
	destDir     string // destination directory (empty: executable's directory)
	excludeFile string // extra exclusion patterns, one glob per line
	dryRun      bool   // walk and report, copy nothing
	dotPath     string // DOT graph output path
	render      string // "svg" or "png", rendered next to the DOT file
	configFile  string // TOML defaults file
}

// merge fills unset options from the config file. A flag the user touched
// always wins over a file value; changed reports whether a flag was set
// on the command line.
func (o *runOpts) merge(cfg config.Config, changed func(string) bool) {
	if !changed("destdir") && cfg.DestDir != "" {
		o.destDir = cfg.DestDir
	}
	if !changed("exclude") && cfg.ExcludeFile != "" {
		o.excludeFile = cfg.ExcludeFile
	}
	if !changed("dot") && cfg.Graph != "" {
		o.dotPath = cfg.Graph
	}
	if !changed("render") && cfg.Render != "" {
		o.render = cfg.Render
	}
	if !changed("dry-run") && cfg.DryRun {
		o.dryRun = true
	}
}

// validate surfaces configuration errors before any traversal starts.
func (o *runOpts) validate(executable string) error {
	info, err := os.Stat(executable)
	if err != nil || info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "not a file: %s", executable)
	}
	if o.destDir != "" {
		info, err := os.Stat(o.destDir)
		if err != nil || !info.IsDir() {
			return errors.New(errors.ErrCodeInvalidPath, "not a directory: %s", o.destDir)
		}
	}
	switch o.render {
	case "", "svg", "png":
	default:
		return errors.New(errors.ErrCodeInvalidPath, "invalid render format: %s (must be 'svg' or 'png')", o.render)
	}
	if o.render != "" && o.dotPath == "" {
		return errors.New(errors.ErrCodeInvalidPath, "--render requires --dot")
	}
	return nil
}

// run resolves the executable's dependency closure and stages it.
func run(ctx context.Context, executable string, opts *runOpts, changed func(string) bool) error {
	logger := loggerFromContext(ctx)

	cfgPath, required := opts.configFile, opts.configFile != ""
	if cfgPath == "" {
		cfgPath = config.DefaultFile
	}
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return err
	}
	opts.merge(cfg, changed)

	if err := opts.validate(executable); err != nil {
		return err
	}
	destDir := opts.destDir
	if destDir == "" {
		destDir = filepath.Dir(executable)
	}

	excl := exclude.Default()
	if opts.excludeFile != "" {
		if err := excl.Load(opts.excludeFile); err != nil {
			return err
		}
		logger.Debugf("Loaded exclusion patterns from %s: %v", opts.excludeFile, excl.Patterns())
	}

	logger.Infof("Resolving dependency closure of %s", executable)
	prog := newProgress(logger)
	table, err := ldd.Resolve(ctx, executable)
	if err != nil {
		return err
	}
	rootName := filepath.Base(executable)
	table.Seed(rootName, executable)
	prog.done(fmt.Sprintf("Resolved %d closure entries", len(table)))

	var dot bytes.Buffer
	var sink *graphio.DotWriter
	if opts.dotPath != "" {
		sink = graphio.NewDotWriter(&dot)
		if err := sink.Begin(); err != nil {
			return err
		}
	}

	summary, err := stage(ctx, table, excl, destDir, rootName, opts, sink)
	if err != nil {
		return err
	}

	if sink != nil {
		if err := sink.End(); err != nil {
			return err
		}
		if err := writeGraph(ctx, dot.Bytes(), opts, logger); err != nil {
			return err
		}
	}

	report(summary, destDir, opts.dryRun)
	return nil
}

// stage walks the dependency tree, with a spinner when stderr is an
// interactive terminal and per-library log lines otherwise.
func stage(ctx context.Context, table ldd.Table, excl *exclude.List, destDir, rootName string, opts *runOpts, sink *graphio.DotWriter) (deptree.Summary, error) {
	logger := loggerFromContext(ctx)

	interactive := isatty.IsTerminal(os.Stderr.Fd()) && logger.GetLevel() > charmlog.DebugLevel
	walkLog := logger.Infof
	if interactive {
		// The spinner owns the terminal line; keep copy chatter at debug.
		walkLog = logger.Debugf

		message := "Staging libraries..."
		if opts.dryRun {
			message = "Walking dependencies (dry run)..."
		}
		sp := newSpinner(ctx, message)
		sp.Start()
		defer sp.Stop()
	}

	walkOpts := deptree.Options{
		DestDir: destDir,
		DryRun:  opts.dryRun,
		Stage:   fscopy.Stage,
		Logger:  func(msg string, args ...any) { walkLog(msg, args...) },
	}
	if sink != nil {
		walkOpts.Sink = sink
	}

	w := deptree.New(table, excl, walkOpts)
	return w.Walk(ctx, rootName)
}

// writeGraph writes the DOT bytes and, when requested, a rendered image
// next to them (same base name, format extension).
func writeGraph(ctx context.Context, dot []byte, opts *runOpts, logger *charmlog.Logger) error {
	if err := os.WriteFile(opts.dotPath, dot, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write graph %s", opts.dotPath)
	}
	logger.Infof("Wrote graph to %s", opts.dotPath)

	if opts.render == "" {
		return nil
	}

	var data []byte
	var err error
	switch opts.render {
	case "svg":
		data, err = graphio.RenderSVG(ctx, dot)
	case "png":
		data, err = graphio.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}

	out := strings.TrimSuffix(opts.dotPath, filepath.Ext(opts.dotPath)) + "." + opts.render
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write rendered graph %s", out)
	}
	logger.Infof("Rendered graph to %s", out)
	return nil
}

// report prints the run summary.
func report(s deptree.Summary, destDir string, dryRun bool) {
	if dryRun {
		printSuccess("Would stage %d of %d libraries into %s", s.Staged, s.Libraries, destDir)
	} else {
		printSuccess("Staged %d of %d libraries into %s", s.Staged, s.Libraries, destDir)
	}
	if s.Reused > 0 {
		printDetail("%d already present, kept as-is", s.Reused)
	}
	if s.Excluded > 0 {
		printDetail("%d dependency edges excluded by pattern", s.Excluded)
	}
}
