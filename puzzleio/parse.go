package puzzleio

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"unicode"

	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/solver"
)

// ParsePuzzles performs a line-oriented scan of r. A puzzle starts at a
// line whose first byte is an ASCII digit (the cardinality bound K);
// field rows of '.'/'@' accumulate until a blank line or EOF. A file with
// zero puzzles parses to an empty slice, not an error.
func ParsePuzzles(r io.Reader) ([]solver.Puzzle, error) {
	scanner := bufio.NewScanner(r)

	var (
		puzzles []solver.Puzzle
		current *solver.Puzzle
		lineNo  int
	)

	flush := func() {
		if current != nil {
			puzzles = append(puzzles, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if line == "" {
			flush()
			continue
		}

		if unicode.IsDigit(rune(line[0])) {
			flush()
			k, err := strconv.Atoi(line)
			if err != nil {
				return nil, &solver.SolverError{Kind: solver.MalformedInput, PuzzleIndex: len(puzzles), Line: lineNo, Err: err}
			}
			current = &solver.Puzzle{K: k}
			continue
		}

		if current == nil {
			return nil, &solver.SolverError{
				Kind: solver.MalformedInput, PuzzleIndex: len(puzzles), Line: lineNo,
				Err: errors.New("field row encountered before a cardinality line"),
			}
		}

		row := []byte(line)
		if len(current.Field) > 0 && len(row) != len(current.Field[0]) {
			return nil, &solver.SolverError{
				Kind: solver.MalformedInput, PuzzleIndex: len(puzzles), Line: lineNo,
				Err: errors.New("ragged field row"),
			}
		}
		for _, c := range row {
			if c != grid.EmptyCell && c != grid.StrawberryCell {
				return nil, &solver.SolverError{
					Kind: solver.MalformedInput, PuzzleIndex: len(puzzles), Line: lineNo,
					Err: errors.New("unrecognized cell byte"),
				}
			}
		}
		current.Field = append(current.Field, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, &solver.SolverError{Kind: solver.InputIO, PuzzleIndex: -1, Err: err}
	}

	flush()
	return puzzles, nil
}
