// Package cli implements the command-line interface of otable.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/replit/otable/internal/config"
	"github.com/replit/otable/internal/trace"
	"github.com/replit/otable/internal/util"
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

// parseRowIndex parses a 0-based row number from the command line.
func parseRowIndex(rowStr string) int {
	i, err := strconv.Atoi(rowStr)
	if err != nil {
		util.Die("Error: invalid row %#v (must be a number)", rowStr)
	}
	return i
}

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'otable --version'.
func getVersion() string {
	return "otable " + version
}

// addInputFlags registers the flags describing the record file.
func addInputFlags(cmd *cobra.Command, opts *inputOptions) {
	cmd.Flags().StringVarP(
		&opts.formatStr, "input-format", "i", "auto",
		`syntax of FILE ("auto", "json", "yaml" or "toml")`,
	)
	cmd.Flags().StringVarP(
		&opts.key, "key", "k", "",
		"top-level key holding the records (TOML default: rows)",
	)
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	var formatStr string
	var columns []string
	var writePath string
	var input inputOptions

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:     "otable",
		Short:   "Show and edit lists of records as tables",
		Version: getVersion(),
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.PersistentFlags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	rootCmd.PersistentFlags().BoolVar(
		&config.NoPager, "no-pager", false, "never pipe wide tables through $PAGER",
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	cmdShow := &cobra.Command{
		Use:   "show FILE",
		Short: "Show the records in a JSON, YAML or TOML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runShow(cmd.Context(), args[0], input, columns, parseOutputFormat(formatStr), writePath)
		},
	}
	cmdShow.Flags().SortFlags = false
	addInputFlags(cmdShow, &input)
	cmdShow.Flags().StringSliceVarP(
		&columns, "columns", "c", []string{},
		"columns to show, in order (comma-separated; default all)",
	)
	cmdShow.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	cmdShow.Flags().StringVarP(
		&writePath, "write", "w", "", "write the output to a file instead of stdout",
	)
	rootCmd.AddCommand(cmdShow)

	cmdDescribe := &cobra.Command{
		Use:   "describe FILE ROW",
		Short: "Show every field of one record",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runDescribe(cmd.Context(), args[0], parseRowIndex(args[1]), input, parseOutputFormat(formatStr))
		},
	}
	cmdDescribe.Flags().SortFlags = false
	addInputFlags(cmdDescribe, &input)
	cmdDescribe.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	rootCmd.AddCommand(cmdDescribe)

	cmdSet := &cobra.Command{
		Use:   "set FILE ROW COLUMN VALUE",
		Short: "Change one field of one record",
		Long: "Change one field of one record and save the file. " +
			"VALUE is read as YAML, so 4 is a number and \"4\" a string.",
		Args: cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			runSet(cmd.Context(), args[0], parseRowIndex(args[1]), args[2], args[3], input)
		},
	}
	cmdSet.Flags().SortFlags = false
	addInputFlags(cmdSet, &input)
	rootCmd.AddCommand(cmdSet)

	cmdQuery := &cobra.Command{
		Use:   "query DATABASE SQL...",
		Short: "Show the result of a query against a SQLite database",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			query := strings.Join(args[1:], " ")
			runQuery(cmd.Context(), args[0], query, parseOutputFormat(formatStr), writePath)
		},
	}
	cmdQuery.Flags().SortFlags = false
	cmdQuery.Flags().StringVarP(
		&formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	cmdQuery.Flags().StringVarP(
		&writePath, "write", "w", "", "write the output to a file instead of stdout",
	)
	rootCmd.AddCommand(cmdQuery)

	cmdListFormats := &cobra.Command{
		Use:   "list-formats",
		Short: "List supported record file formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runListFormats()
		},
	}
	rootCmd.AddCommand(cmdListFormats)

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

	tracing := trace.MaybeTrace(getVersion())
	err := rootCmd.ExecuteContext(context.Background())
	if tracing {
		trace.Stop()
	}
	if err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
