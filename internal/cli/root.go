package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/qdastamp/qdastamp/internal/logging"
	"github.com/qdastamp/qdastamp/internal/transcript"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qdastamp INPUT",
	Short: "Rewrite transcript timestamps as elapsed time for QDA software",
	Long: `Qdastamp converts a transcript whose lines start with a wall-clock
time (HH:MM:SS) into one where each time is replaced by the time elapsed
since the first line, ready for import into qualitative data analysis tools.

Midnight crossings are detected whenever a time is earlier than the one
before it. Elapsed times of 24 hours or more are shown modulo 24 hours.

The output is written next to the input with ".qda" before its extension.

Examples:
  qdastamp transcript.txt      # writes transcript.qda.txt
  qdastamp recording           # writes recording.qda`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runConvert,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	// arguments are valid past this point; failures are not usage errors
	cmd.SilenceUsage = true

	logger.Debugw("Converting transcript",
		"input", inputPath,
		"output", transcript.OutputPath(inputPath),
	)

	outputPath, summary, err := transcript.ConvertFile(inputPath)
	if err != nil {
		if outputPath != "" {
			logger.Warnw("Conversion stopped, partial output left on disk",
				"output", outputPath,
				"entries", summary.Entries,
			)
		}
		return err
	}

	logger.Debugw("Conversion complete",
		"entries", summary.Entries,
		"rollovers", summary.Rollovers,
		"elapsed", summary.Elapsed.String(),
	)

	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Wrote transcript with QDA timestamps to: %s\n",
		color.New(color.FgGreen).Sprint(outputPath),
	)

	return nil
}
