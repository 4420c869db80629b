package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/singleflight"

	"github.com/harrisonrobin/planus/pkg/logging"
)

func (a *app) watchCommand() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "watch SCHEDULE",
		Short: "Re-run the analysis whenever the schedule or contract changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := []string{args[0]}
			if opts.contract != "" {
				paths = append(paths, opts.contract)
			}
			out := cmd.OutOrStdout()
			analyze := func(ctx context.Context) error {
				res, err := a.run(ctx, args[0], opts)
				if err != nil {
					return err
				}
				return a.render(out, res)
			}

			w, err := newWatcher(paths, a.cfg.Debounce(), a.logger, analyze)
			if err != nil {
				return err
			}
			defer w.close()

			if err := analyze(cmd.Context()); err != nil {
				a.logger.Error("initial analysis failed", "error", err)
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watching %d file(s), press Ctrl+C to stop\n", len(paths))
			return w.loop(cmd.Context())
		},
	}
	opts.register(cmd)
	return cmd
}

// watcher re-runs fn after changes to its target files settle. Directories
// are watched rather than files so editors that replace files on save are
// still seen.
type watcher struct {
	fs       *fsnotify.Watcher
	targets  map[string]bool
	debounce time.Duration
	logger   *logging.Logger
	fn       func(context.Context) error
	group    singleflight.Group
	rerun    atomic.Bool
	wg       sync.WaitGroup
}

func newWatcher(paths []string, debounce time.Duration, logger *logging.Logger, fn func(context.Context) error) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	w := &watcher{fs: fs, targets: map[string]bool{}, debounce: debounce, logger: logger, fn: fn}

	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// loop blocks until ctx is done or the watcher is closed.
func (w *watcher) loop(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		w.wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.targets[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("fsnotify event", "op", event.Op.String(), "file", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.wg.Add(1)
			go w.trigger(ctx)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify error", "error", err)
		}
	}
}

// trigger runs fn, collapsing calls that arrive while a run is in flight
// into a single trailing run so the last change is always analyzed.
func (w *watcher) trigger(ctx context.Context) {
	defer w.wg.Done()
	w.rerun.Store(true)
	for w.rerun.Load() && ctx.Err() == nil {
		w.group.Do("analysis", func() (any, error) {
			for w.rerun.Swap(false) && ctx.Err() == nil {
				if err := w.fn(ctx); err != nil {
					w.logger.Error("analysis failed", "error", err)
				}
			}
			return nil, nil
		})
	}
}

func (w *watcher) close() error {
	return w.fs.Close()
}
