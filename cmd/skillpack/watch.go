package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillpack/pkg/logger"
	"github.com/jingkaihe/skillpack/pkg/packager"
	"github.com/jingkaihe/skillpack/pkg/presenter"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	SourceDir    string
	OutputDir    string
	Package      bool
	DebounceTime int
}

// NewWatchConfig creates a new WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		SourceDir:    viper.GetString("source_dir"),
		OutputDir:    viper.GetString("output_dir"),
		Package:      false,
		DebounceTime: 500,
	}
}

// Validate validates the WatchConfig and returns an error if invalid
func (c *WatchConfig) Validate() error {
	if c.DebounceTime < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.DebounceTime)
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch <skill-name> [source-path]",
	Short: "Re-validate a skill whenever its files change",
	Long: `Continuously monitors a skill directory and re-runs validation
whenever files change. With --package the skill is also repackaged after
each successful validation.

Examples:
  skillpack watch my-skill
  skillpack watch my-skill /path/to/skills --package --output dist`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		config := getWatchConfigFromFlags(cmd, args)
		if err := config.Validate(); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		if err := runWatchMode(ctx, args[0], config); err != nil {
			presenter.Error(err, "Watch failed")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().StringP("source", "s", defaults.SourceDir, "Directory containing the skill directory")
	watchCmd.Flags().StringP("output", "o", defaults.OutputDir, "Directory to receive the .skill file")
	watchCmd.Flags().BoolP("package", "p", defaults.Package, "Repackage after each successful validation")
	watchCmd.Flags().Int("debounce", defaults.DebounceTime, "Debounce time in milliseconds before re-running")
	rootCmd.AddCommand(watchCmd)
}

func getWatchConfigFromFlags(cmd *cobra.Command, args []string) *WatchConfig {
	config := NewWatchConfig()
	if source, err := cmd.Flags().GetString("source"); err == nil && source != "" {
		config.SourceDir = source
	}
	if output, err := cmd.Flags().GetString("output"); err == nil && output != "" {
		config.OutputDir = output
	}
	if pkg, err := cmd.Flags().GetBool("package"); err == nil {
		config.Package = pkg
	}
	if debounce, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounce
	}
	if len(args) > 1 {
		config.SourceDir = args[1]
	}
	if config.SourceDir == "" {
		config.SourceDir = "."
	}
	return config
}

func runWatchMode(ctx context.Context, name string, config *WatchConfig) error {
	log := logger.G(ctx)

	skillDir := filepath.Join(config.SourceDir, name)
	if _, err := os.Stat(skillDir); err != nil {
		return errors.Wrapf(err, "cannot watch %s", skillDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	// Watch the skill directory and every subdirectory; fsnotify does
	// not recurse on its own.
	err = filepath.Walk(skillDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to watch skill directory")
	}

	presenter.Info(fmt.Sprintf("Watching %s (Ctrl-C to stop)", skillDir))
	runWatchCheck(name, config)

	debounce := time.Duration(config.DebounceTime) * time.Millisecond
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.WithField("path", event.Name).WithField("op", event.Op.String()).Debug("file event")
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					watcher.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerCh = timer.C
		case <-timerCh:
			timerCh = nil
			presenter.Separator()
			runWatchCheck(name, config)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		}
	}
}

// runWatchCheck runs a single validation (and optional packaging) pass.
// Failures are reported but do not stop the watch loop.
func runWatchCheck(name string, config *WatchConfig) {
	p := packager.New(
		packager.WithSourceDir(config.SourceDir),
		packager.WithOutputDir(config.OutputDir),
	)

	if _, err := p.Validate(name); err != nil {
		presenter.Error(err, "Validation failed")
		return
	}
	presenter.Success(fmt.Sprintf("Skill structure validated: %s", name))

	if !config.Package {
		return
	}

	result, err := p.Package(name)
	if err != nil {
		presenter.Error(err, "Failed to package skill")
		return
	}
	presenter.Success(fmt.Sprintf("Packaged %s (%.1f KB)", result.OutputPath, result.SizeKB()))
}
