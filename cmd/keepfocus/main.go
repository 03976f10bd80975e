// Command keepfocus patches UI trees without losing the focused element.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/keepfocus/internal/config"
	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/internal/logging"
	"github.com/vango-dev/keepfocus/pkg/reconcile"
	"github.com/vango-dev/keepfocus/pkg/telemetry"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds state shared by the subcommands.
type app struct {
	configDir string
	logLevel  string
	noColor   bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errors.Fprint(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "keepfocus",
		Short: "Focus-preserving UI tree reconciliation",
		Long: `keepfocus patches a live UI tree toward a new description while the
element that holds keyboard focus keeps its identity.

Descriptions are JSON:

  {"tag": "input", "key": "name", "attrs": {"value": "a"}, "on": {"input": "save"}}
  {"text": "hello"}`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configDir, "config", "c", "", "Directory containing keepfocus.json")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colors in error output")

	rootCmd.AddCommand(
		patchCmd(a),
		serveCmd(a),
		explainCmd(),
		versionCmd(),
	)
	return rootCmd
}

// setup loads configuration and installs the process logger. Without
// --config a keepfocus.json in the working directory is used if present.
func (a *app) setup() error {
	errors.SetColors(!a.noColor && os.Getenv("NO_COLOR") == "")

	dir := a.configDir
	if dir == "" {
		dir = "."
	}
	cfg, err := config.Load(dir)
	switch {
	case err == nil:
	case errors.Code(err) == "E141" && a.configDir == "":
		cfg = config.New()
	default:
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = logging.New(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	slog.SetDefault(a.logger)
	return nil
}

// engine builds a reconciliation engine from the loaded config.
func (a *app) engine(observer reconcile.Observer) *reconcile.Engine {
	opts := []reconcile.Option{
		reconcile.WithLogger(a.logger.With("component", "reconcile")),
	}
	if observer != nil {
		opts = append(opts, reconcile.WithObserver(observer))
	}
	if a.cfg.Tracing.Enabled {
		opts = append(opts, reconcile.WithTracer(telemetry.NewTracer(
			telemetry.WithTracerName(a.cfg.Tracing.TracerName),
		)))
	}
	return reconcile.New(opts...)
}
