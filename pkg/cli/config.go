package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/planus/pkg/config"
	"github.com/harrisonrobin/planus/pkg/i18n"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the planus configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configPath())
				return err
			},
		},
		&cobra.Command{
			Use:   "set-calendar NAME",
			Short: "Set the default Google Calendar for export",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := strings.TrimSpace(args[0])
				if name == "" {
					return errors.New("calendar name must not be empty")
				}
				return a.updateConfig(cmd, func(c *config.Config) { c.Calendar = name },
					"Default calendar set to: %s\n", name)
			},
		},
		&cobra.Command{
			Use:   "set-language LANG",
			Short: "Set the report language (en, pt, es)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				loc, ok := i18n.Match(args[0])
				if !ok {
					return fmt.Errorf("unsupported language %q: want one of %v", args[0], i18n.Supported())
				}
				return a.updateConfig(cmd, func(c *config.Config) { c.Language = loc.String() },
					"Language set to: %s\n", loc)
			},
		},
	)
	return cmd
}

func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return config.ConfigFile()
}

// updateConfig applies edit to the config file alone, so environment and flag
// overrides never leak into the saved file.
func (a *app) updateConfig(cmd *cobra.Command, edit func(*config.Config), format string, args ...any) error {
	path := a.configPath()
	cfg := config.Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to read config: %w", err)
	}

	edit(cfg)
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	return err
}
