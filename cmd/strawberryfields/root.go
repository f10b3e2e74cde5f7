package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strawberryfields/greenhouse/internal/flog"
	"github.com/strawberryfields/greenhouse/puzzleio"
	"github.com/strawberryfields/greenhouse/solver"
)

var (
	inputPath  string
	outputPath string
	verbose    bool
	quiet      bool
)

// rootCmd is the strawberryfields CLI's single command: read --file, solve
// every puzzle in it, write --output, print the run summary.
var rootCmd = &cobra.Command{
	Use:   "strawberryfields",
	Short: "Compute minimum-cost disjoint greenhouse coverings of strawberry fields",
	Long: `strawberryfields reads a file of strawberry-field puzzles, each bounding
the number of axis-aligned greenhouses permitted, and writes the computed
disjoint covering plus its cost for every puzzle.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flog.VerboseEnabled = verbose
		// A positional path wins over the --file default, but an
		// explicitly-set --file flag wins over a positional path.
		if len(args) > 0 && !cmd.Flags().Changed("file") {
			inputPath = args[0]
		}
		return run()
	},
}

// Execute runs the root command and exits with a code derived from the
// returned error's solver.SolverError.Kind, or 0 on success. Any error
// that isn't already a SolverError originates from cobra's own flag
// parsing or argument validation — an unknown flag or a bad flag value —
// and is reported as InvalidOption.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var se *solver.SolverError
		if !errors.As(err, &se) {
			se = &solver.SolverError{Kind: solver.InvalidOption, PuzzleIndex: -1, Err: err}
		}
		fmt.Fprintln(os.Stderr, se.Error())
		os.Exit(exitCode(se.Kind))
	}
}

// exitCode maps a SolverError.Kind to a distinct non-zero exit status.
func exitCode(kind solver.ErrorKind) int {
	switch kind {
	case solver.InvalidOption:
		return 2
	case solver.InputIO:
		return 3
	case solver.MalformedInput:
		return 4
	case solver.OutputIO:
		return 5
	case solver.Unsolvable:
		return 6
	default:
		return 1
	}
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "strawberries.txt", "input puzzle file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "optimal_covering.txt", "output covering file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable per-puzzle progress logging")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress spinner")
}

func run() error {
	in, err := os.Open(inputPath)
	if err != nil {
		return &solver.SolverError{Kind: solver.InputIO, PuzzleIndex: -1, Err: err}
	}
	defer in.Close()

	puzzles, err := puzzleio.ParsePuzzles(in)
	if err != nil {
		return err
	}
	flog.Verbose("parsed %d puzzle(s) from %s", len(puzzles), inputPath)

	sp := flog.NewSpinner("solving", quiet)
	sp.Start()
	results, summary, err := solver.SolveAll(puzzles, func(index, total int) {
		sp.UpdatePuzzle(index, total)
	})
	sp.Stop()
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return &solver.SolverError{Kind: solver.OutputIO, PuzzleIndex: -1, Err: err}
	}
	defer out.Close()

	for i, solved := range results {
		if err := puzzleio.WritePuzzle(out, solved); err != nil {
			return &solver.SolverError{Kind: solver.OutputIO, PuzzleIndex: i, Err: err}
		}
		flog.Puzzle(i, len(solved.Cover), solved.Cost)
	}
	if err := puzzleio.WriteSummary(out, summary); err != nil {
		return &solver.SolverError{Kind: solver.OutputIO, PuzzleIndex: -1, Err: err}
	}

	flog.Info("solved %d puzzle(s), total cost %d", summary.Count, summary.TotalCost)
	return nil
}
