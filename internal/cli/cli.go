// Package cli implements the command-line interface of sheetstat.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/replit/sheetstat/internal/config"
	"github.com/replit/sheetstat/internal/trace"
	"github.com/replit/sheetstat/internal/util"
	"github.com/spf13/cobra"
)

// parseOutputFormat takes "table" or "json" and returns an
// outputFormat enum value.
func parseOutputFormat(formatStr string) outputFormat {
	switch formatStr {
	case "table":
		return outputFormatTable
	case "json":
		return outputFormatJSON
	default:
		util.Die(`Error: invalid format %#v (must be "table" or "json")`, formatStr)
		return 0
	}
}

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'sheetstat --version'.
func getVersion() string {
	return "sheetstat " + version
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	var formatStr string
	var enableTrace bool
	opts := runOptions{}

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "sheetstat",
		Short:   "Compute row means and standard deviations of a grid typed at the terminal",
		Version: getVersion(),
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts.format = parseOutputFormat(formatStr)

			stopTrace, err := trace.Start(enableTrace, getVersion())
			if err != nil {
				util.Die("An error occurred: %s", err)
			}
			err = withInput(os.Stdin, func(in io.Reader) error {
				return runSheet(context.Background(), in, os.Stdout, opts)
			})
			stopTrace()
			if err != nil {
				util.Die("An error occurred: %s", err)
			}
		},
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	rootCmd.Flags().StringVarP(
		&opts.settingsFile, "config", "c", "", "display settings file (.toml, .yaml or .yml)",
	)
	rootCmd.Flags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	rootCmd.Flags().BoolVar(
		&opts.noPager, "no-pager", false, "never page wide tables through less",
	)
	rootCmd.Flags().BoolVar(
		&opts.color, "color", false, "emphasise the maximum with colour on a terminal",
	)
	rootCmd.Flags().StringVar(
		&opts.logLevel, "log-level", "warn", `diagnostic log level ("debug", "info", "warn" or "error")`,
	)
	rootCmd.Flags().BoolVar(
		&enableTrace, "trace", false, "send spans for each phase to a Datadog agent",
	)
	rootCmd.Flags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.Flags().BoolP(
		"version", "v", false, "display command version",
	)

	specialArgs := map[string](func()){}
	for _, helpFlag := range []string{"-help", "-?"} {
		specialArgs[helpFlag] = func() {
			rootCmd.Usage()
			os.Exit(0)
		}
	}
	for _, versionFlag := range []string{"-version", "-V"} {
		specialArgs[versionFlag] = func() {
			fmt.Println(getVersion())
			os.Exit(0)
		}
	}

	if len(os.Args) >= 2 {
		fn, ok := specialArgs[os.Args[1]]
		if ok {
			fn()
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
