package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/deploycheck/deploycheck/internal/adapters/outbound/catalog"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/content"
	"github.com/deploycheck/deploycheck/internal/adapters/outbound/discovery"
	"github.com/deploycheck/deploycheck/internal/application"
	"github.com/deploycheck/deploycheck/internal/domain"
)

const watchDebounce = 300 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-audit the repository on every filesystem change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return &domain.UsageError{Reason: "resolving repository path", Err: err}
			}

			cat, err := catalog.New().Load(catalogPath)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch init failed: %w", err)
			}
			defer watcher.Close()

			if err := addWatchRecursive(watcher, absPath); err != nil {
				return fmt.Errorf("watch failed: %w", err)
			}

			runAudit := func() {
				// Fresh adapters per run: the walk and read caches must not
				// outlive one audit under watch.
				svc := application.NewAuditService(discovery.New(), content.New(), 0)
				report, err := svc.Audit(cmd.Context(), absPath, cat)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "audit failed: %v\n", err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  score %.2f (%s)  %d critical failing\n",
					time.Now().Format("15:04:05"), report.Score, report.Grade(),
					report.CriticalFailureCount())
			}
			runAudit()

			var timer *time.Timer
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-watcher.Events:
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(watchDebounce, runAudit)
				case err := <-watcher.Errors:
					fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a YAML rule catalog (default: built-in catalog)")

	return cmd
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if discovery.SkipDir(info.Name()) {
				return filepath.SkipDir
			}
			return w.Add(path)
		}
		return nil
	})
}
