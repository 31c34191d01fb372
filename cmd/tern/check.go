package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tern/internal/driver"
	"tern/internal/project"
	"tern/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.tn|directory>",
	Short: "Check tern source files for errors",
	Long: `Check runs the full front-end pipeline (lex, parse, lower) on a tern
source file or on every *.tn file within a directory, and reports the
collected diagnostics. Lowering never stops at the first error; one run
reports as much as it can find.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("dump", "", "dump an internal table after checking (types)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "interactive progress for directories (auto|on|off)")
	checkCmd.Flags().Bool("disk-cache", false, "cache per-file results under the user cache directory")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	dump, err := cmd.Flags().GetString("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}
	switch dump {
	case "", "types":
	default:
		return fmt.Errorf("unknown dump %q (expected types)", dump)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	startDir := path
	if !st.IsDir() {
		startDir = filepath.Dir(path)
	}

	// Project manifest supplies defaults for anything not set on the
	// command line.
	if manifest, ok, merr := project.Load(startDir); merr == nil && ok {
		cc := manifest.Config.Check
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cc.MaxDiagnostics > 0 {
			maxDiagnostics = cc.MaxDiagnostics
		}
		if !cmd.Flags().Changed("jobs") && cc.Jobs > 0 {
			jobs = cc.Jobs
		}
		if !cmd.Flags().Changed("disk-cache") && cc.Cache {
			useCache = true
		}
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics,
		DumpTypes:      dump == "types",
	}
	if useCache {
		cache, cerr := driver.OpenDiskCache("tern")
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: disk cache disabled: %v\n", cerr)
		} else {
			opts.Cache = cache
		}
	}

	var results []driver.CheckResult
	if st.IsDir() {
		results, err = checkDirectory(cmd, path, jobs, mode, opts)
	} else {
		var res driver.CheckResult
		res, err = driver.CheckPath(source.NewFileSet(), path, opts)
		results = []driver.CheckResult{res}
	}
	if err != nil {
		return err
	}

	broken := 0
	for _, res := range results {
		if res.Rendered != "" {
			fmt.Fprintln(os.Stderr, res.Rendered)
		}
		if res.Dump != "" {
			fmt.Println(res.Dump)
		}
		if res.Broken {
			broken++
		}
	}
	if !quiet && broken > 0 {
		fmt.Fprintf(os.Stderr, "check failed: %d of %d file(s) with errors\n", broken, len(results))
	}
	if broken > 0 {
		// Diagnostics are already printed; suppress cobra's usage output.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func checkDirectory(cmd *cobra.Command, dir string, jobs int, mode uiMode, opts driver.CheckOptions) ([]driver.CheckResult, error) {
	if !shouldUseTUI(mode) {
		_, results, err := driver.CheckDir(cmd.Context(), dir, jobs, opts)
		return results, err
	}
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return runCheckDirWithUI(cmd.Context(), "checking "+dir, files, dir, jobs, opts)
}
