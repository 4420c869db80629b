package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/planus/pkg/analysis"
	"github.com/harrisonrobin/planus/pkg/contract"
	"github.com/harrisonrobin/planus/pkg/report"
	"github.com/harrisonrobin/planus/pkg/taskjson"
)

// runOptions are the inputs shared by analyze, watch and export.
type runOptions struct {
	contract string
	now      string
}

func (o *runOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.contract, "contract", "", "contract document (.pdf, .docx, .txt, .md) to reconcile against")
	cmd.Flags().StringVar(&o.now, "now", "", "evaluation time (RFC 3339 or YYYY-MM-DD); defaults to the current time")
}

func (a *app) run(ctx context.Context, schedule string, o runOptions) (*analysis.Result, error) {
	loc, err := a.cfg.TimeLocation()
	if err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	now, err := parseNow(o.now, loc)
	if err != nil {
		return nil, err
	}
	return analysis.New(a.logger).RunFiles(ctx, analysis.Files{
		Schedule: schedule,
		Contract: o.contract,
		Location: loc,
		Locale:   a.cfg.Locale(),
		Now:      now,
	})
}

func (a *app) render(w io.Writer, res *analysis.Result) error {
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	return report.Write(w, res, format)
}

func (a *app) analyzeCommand() *cobra.Command {
	var opts runOptions
	var output string
	cmd := &cobra.Command{
		Use:   "analyze SCHEDULE",
		Short: "Analyze a schedule and print a status report",
		Long: `Analyze an MS Project XML (.xml) or task JSON (.json) schedule.

The report covers task delay risk, delayed and longest tasks, resource load
and productivity, and, with --contract, compliance with the contract's
activities. A contract that cannot be read is reported but does not stop the
schedule analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.run(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			err = a.render(w, res)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			return err
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func (a *app) tasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks SCHEDULE",
		Short: "Print the normalized tasks of a schedule as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.cfg.TimeLocation()
			if err != nil {
				return fmt.Errorf("invalid location: %w", err)
			}
			s, err := analysis.LoadSchedule(args[0], loc)
			if err != nil {
				return err
			}
			a.logger.Info("schedule loaded", "path", args[0], "tasks", len(s.Tasks))
			return taskjson.WriteTasks(cmd.OutOrStdout(), s.Tasks)
		},
	}
}

func (a *app) extractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract CONTRACT",
		Short: "List the activities, deadlines and deliverables found in a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := analysis.LoadContract(args[0])
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), doc, a.cfg.Format)
		},
	}
}

type extracted struct {
	Activities   []string `json:"activities" yaml:"activities"`
	Deadlines    []string `json:"deadlines" yaml:"deadlines"`
	Deliverables []string `json:"deliverables" yaml:"deliverables"`
}

func writeDocument(w io.Writer, doc *contract.Document, format string) error {
	out := extracted{Activities: doc.Activities, Deadlines: doc.Deadlines, Deliverables: doc.Deliverables}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case report.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case report.FormatYAML:
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	sections := []struct {
		title  string
		values []string
	}{
		{"Activities", out.Activities},
		{"Deadlines", out.Deadlines},
		{"Deliverables", out.Deliverables},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", s.title, len(s.values)); err != nil {
			return err
		}
		for _, v := range s.values {
			if _, err := fmt.Fprintf(w, "  - %s\n", v); err != nil {
				return err
			}
		}
	}
	return nil
}
