package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/planus/pkg/auth"
	"github.com/harrisonrobin/planus/pkg/config"
	"github.com/harrisonrobin/planus/pkg/google"
	"github.com/harrisonrobin/planus/pkg/index"
	"github.com/harrisonrobin/planus/pkg/overdue"
)

func (a *app) exportCommand() *cobra.Command {
	var opts runOptions
	var calendarName string
	var prune bool
	cmd := &cobra.Command{
		Use:   "export SCHEDULE",
		Short: "Analyze a schedule and sync its tasks to Google Calendar",
		Long: `Analyze a schedule and create or update one Google Calendar event per
dated task, coloured by risk level.

Events are matched to tasks through a local index and a private event
property, so re-running export updates events instead of duplicating them.
Tasks exported earlier that are now past their finish date and no longer in
the schedule are flagged with a "! " prefix, or deleted with --prune.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if calendarName == "" {
				calendarName = a.cfg.Calendar
			}

			res, err := a.run(ctx, args[0], opts)
			if err != nil {
				return err
			}

			dir := config.ConfigDir()
			indexPath := filepath.Join(dir, index.FileName)
			idx, err := index.NewEventIndex(indexPath)
			if err != nil {
				return fmt.Errorf("%w (delete %s to rebuild it)", err, indexPath)
			}
			pending, err := overdue.NewTable(filepath.Join(dir, overdue.FileName))
			if err != nil {
				a.logger.Warn("could not load pending task table, sweep disabled", "error", err)
				pending = nil
			}

			client, err := google.NewClient(ctx, dir, calendarName, idx, a.logger)
			if err != nil {
				return err
			}
			stats, err := google.NewExporter(client, pending, a.logger).WithPrune(prune).Export(ctx, res)

			if serr := idx.Save(); serr != nil {
				a.logger.Warn("failed to save event index", "error", serr)
			}
			if pending != nil {
				if serr := pending.Save(); serr != nil {
					a.logger.Warn("failed to save pending task table", "error", serr)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %q: %d synced, %d skipped, %d failed, %d flagged overdue, %d deleted\n",
				res.Project, calendarName, stats.Synced, stats.Skipped, stats.Failed, stats.Flagged, stats.Deleted)
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&calendarName, "calendar", "", "Google Calendar name (overrides config)")
	cmd.Flags().BoolVar(&prune, "prune", false, "delete events of tasks no longer in the schedule")
	return cmd
}

func (a *app) authCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize planus to use Google Calendar",
		Long: `Discard any cached token and run the OAuth flow again. Place the
client_secret.json downloaded from the Google Cloud console in the config
directory first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := config.ConfigDir()
			removed, err := auth.ResetToken(dir)
			if err != nil {
				return err
			}
			if removed {
				a.logger.Info("removed cached token", "dir", dir)
			}
			if _, err := auth.CalendarService(cmd.Context(), dir, a.logger); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Authentication successful, token saved to %s\n", filepath.Join(dir, auth.TokenFile))
			return nil
		},
	}
}
