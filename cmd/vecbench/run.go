package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rawvec-go/rawvec/internal/scenario"
)

var (
	runJSON bool
)

var runCmd = &cobra.Command{
	Use:   "run <glob>",
	Short: "Run scenario files matching a glob",
	Long: `Run executes every scenario file matched by the given glob pattern.
Patterns support doublestar syntax, e.g. 'scenarios/**/*.yaml'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := scenario.Find(args[0])
		if err != nil {
			fatal("resolving scenario glob", err)
		}
		if len(paths) == 0 {
			fmt.Println("no scenarios matched")
			return
		}

		failed := 0
		for _, path := range paths {
			s, err := scenario.Load(path)
			if err != nil {
				fatal("loading scenario", err)
			}
			slog.Debug("running scenario", "file", path, "ops", len(s.Ops))

			rep, err := s.Run()
			if err != nil {
				slog.Error("scenario failed", "file", path, "error", err)
				failed++
				continue
			}

			if runJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(rep); err != nil {
					fatal("encoding report", err)
				}
				continue
			}
			fmt.Printf("%s: len=%d cap=%d elapsed=%v\n", rep.Name, rep.Len, rep.Cap, rep.Elapsed)
		}

		if failed > 0 {
			fmt.Printf("%d of %d scenarios failed\n", failed, len(paths))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output reports in JSON format")
}
