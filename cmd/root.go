// Package cmd provides the root command and CLI setup for webch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"webch.dev/pkg/webch/internal/adapter"
	"webch.dev/pkg/webch/internal/controller"
	"webch.dev/pkg/webch/internal/domain"
	m "webch.dev/pkg/webch/internal/model"
)

// workflow can be replaced by tests; when nil the root command wires the real
// pipeline from its collaborators at run time.
var workflow domain.Workflow

var verboseFlag int
var directoryFlag string
var outputFlag string
var reportFlag string
var tuiFlag bool

const rootLongDescription = `Webch applies WEB-style change files to a base text file. A change file is a
sequence of @x/@y/@z sections: the lines between @x and @y are located
verbatim in the current text and replaced by the lines between @y and @z.
Sections match in order against a forward-only cursor, and change files apply
cumulatively in the order given, each one operating on the previous result.

Without -o the result is printed as an annotated listing with every
non-printable byte escaped as a reverse-video <XX>; with -o it is written
byte-accurately to a file, or to standard output when the argument is "-".`

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "webch [flags] <webfile> <changefile>...",
		Short:        "Apply WEB change files to a base text",
		Long:         rootLongDescription,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag > 1)

			wf := workflow
			if wf == nil {
				ui := controller.NewSimpleUI(cmd, verboseFlag > 0)
				wf = domain.NewWorkflow(adapter.NewLocalFileAdapter(), ui)
			}

			return wf.Run(domain.RunArgs{
				WebFile:     m.Path(args[0]),
				ChangeFiles: parsePaths(args[1:]),
				Directory:   m.Path(viper.GetString(directoryFlagName)),
				Output:      m.Path(viper.GetString(outputFlagName)),
				Report:      m.Path(viper.GetString(reportFlagName)),
				TUI:         tuiFlag,
				Out:         cmd.OutOrStdout(),
			})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().CountVarP(&verboseFlag, verboseFlagName, "v", "increase verbosity (-v progress, -vv debug logging)")

	cmd.Flags().StringVarP(&directoryFlag, directoryFlagName, "w", viper.GetString(directoryFlagName), "change working directory before any file access")
	bindFlagToConfig(cmd.Flags().Lookup(directoryFlagName), directoryFlagName)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputFlagName), `output destination ("-" for raw stdout; default is an annotated listing)`)
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputFlagName)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportFlagName), "write per-change-file apply statistics as YAML to this path")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportFlagName)

	cmd.Flags().BoolVar(&tuiFlag, tuiFlagName, false, "browse the result in an interactive pager")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
