package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/oxc-go/oxc-core/internal/driver"
)

// newWatchCmd is the one place fsnotify is imported: every other command
// runs once and exits, so only "watch" needs a filesystem-event loop, and
// keeping it out of internal/driver means the pipeline stays usable from a
// one-shot CLI invocation or a test without pulling in an OS-level watcher.
func newWatchCmd() *cobra.Command {
	var configPath string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Re-run lint over the given files whenever one of them changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			reg := buildRegistry(cfg)
			d, err := driver.New(reg, cfg, 4, 128)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()
			for _, path := range args {
				if err := watcher.Add(path); err != nil {
					return fmt.Errorf("watching %s: %w", path, err)
				}
			}

			runOnce := func() error {
				results, err := runLintBatch(cmd.Context(), d, args)
				if err != nil {
					return err
				}
				for _, r := range results {
					if r.Err != nil {
						fmt.Printf("%s: %v\n", r.Path, r.Err)
						continue
					}
					printMsgs(r.ParseMsgs)
					printFindings(r.Findings)
				}
				return nil
			}
			if err := runOnce(); err != nil {
				return err
			}

			var timer *time.Timer
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, func() {
						if err := runOnce(); err != nil {
							fmt.Println(err)
						}
					})
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Println("watch error:", err)
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				}
			}
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an oxcgo config file (.json or .yaml)")
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "time to wait after a change before re-running")
	return cmd
}

func runLintBatch(ctx context.Context, d *driver.Driver, paths []string) ([]driver.Result, error) {
	inputs := make([]driver.FileInput, 0, len(paths))
	for _, path := range paths {
		contents, err := readSource(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, driver.FileInput{Path: path, Contents: contents, SourceType: resolveSourceType(path)})
	}
	return d.Run(ctx, inputs, driver.Options{Lint: true})
}
