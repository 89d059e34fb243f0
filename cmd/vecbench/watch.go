package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rawvec-go/rawvec/internal/scenario"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-run scenarios in a directory whenever they change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("creating watcher", err)
		}
		defer watcher.Close()

		if err := watcher.Add(dir); err != nil {
			fatal("watching directory", err)
		}
		slog.Info("watching for scenario changes", "dir", dir)

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if ext := filepath.Ext(event.Name); ext != ".yaml" && ext != ".yml" {
					continue
				}
				runScenarioFile(event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watch error", "error", err)
			case <-interrupt:
				slog.Info("stopping watch")
				return
			}
		}
	},
}

func runScenarioFile(path string) {
	s, err := scenario.Load(path)
	if err != nil {
		slog.Error("loading scenario", "file", path, "error", err)
		return
	}
	rep, err := s.Run()
	if err != nil {
		slog.Error("scenario failed", "file", path, "error", err)
		return
	}
	slog.Info("scenario passed",
		"name", rep.Name,
		"len", rep.Len,
		"cap", rep.Cap,
		"elapsed", rep.Elapsed,
	)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
