// Package cli wires the planus commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harrisonrobin/planus/pkg/config"
	"github.com/harrisonrobin/planus/pkg/logging"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *logging.Logger
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "planus",
		Short: "Schedule risk, resource and contract compliance analysis",
		Long: `Planus reads an MS Project XML (or task JSON) schedule, scores the delay
risk of every task, checks resource load and productivity, and reconciles the
schedule against the activities listed in a contract document.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/planus/config.yaml)")
	flags.StringP("lang", "l", "", "report language (en, pt, es)")
	flags.StringP("format", "f", "", "report format (markdown, terminal, json, yaml)")
	flags.String("location", "", "time zone for schedule dates without one (IANA name or Local)")
	flags.String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		a.analyzeCommand(),
		a.tasksCommand(),
		a.extractCommand(),
		a.watchCommand(),
		a.exportCommand(),
		a.authCommand(),
		a.configCommand(),
	)
	return root
}

var flagKeys = map[string]string{
	"lang":      "language",
	"format":    "format",
	"location":  "location",
	"log-level": "logging.level",
}

// setup loads configuration with flag > env > file > default priority and
// opens the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if skipsConfigValidation(cmd) {
		a.logger = logging.NopLogger()
		return nil
	}

	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	a.v = v

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	a.logger = logger.With("command", cmd.Name())
	return nil
}

// skipsConfigValidation reports whether cmd edits configuration and must run
// even when the current file is invalid or missing.
func skipsConfigValidation(cmd *cobra.Command) bool {
	return cmd.Parent() != nil && cmd.Parent().Name() == "config" && cmd.Name() != "show"
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

// parseNow reads the --now flag: RFC 3339, or a date or date-time without zone
// in loc. Empty means the current time.
func parseNow(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: want RFC 3339 or YYYY-MM-DD", s)
}

// openOutput returns the command's stdout, or a created file when path is
// set. The returned close function is always safe to call.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
