package puzzleio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/strawberryfields/greenhouse/grid"
	"github.com/strawberryfields/greenhouse/solver"
)

// WritePuzzle renders one solved puzzle in the output grammar: a
// Cardinality line, a Cost line, a separator of num_columns '=' characters,
// the labeled grid, and a trailing blank line.
func WritePuzzle(w io.Writer, sp solver.SolvedPuzzle) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "Cardinality:%d\n", sp.K); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Cost:%d\n", sp.Cost); err != nil {
		return err
	}
	for i := 0; i < sp.NumCols; i++ {
		if err := bw.WriteByte('='); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	cells := labelGrid(sp)
	for r := 0; r < sp.NumRows; r++ {
		if _, err := bw.Write(cells[r]); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}

// labelGrid renders sp.NumRows x sp.NumCols cells: grid.EmptyCell where no
// cover rectangle claims the cell, or that rectangle's Label otherwise.
func labelGrid(sp solver.SolvedPuzzle) [][]byte {
	rows := make([][]byte, sp.NumRows)
	for r := range rows {
		row := make([]byte, sp.NumCols)
		for c := range row {
			row[c] = grid.EmptyCell
		}
		rows[r] = row
	}
	for _, rect := range sp.Cover {
		for r := rect.TopRow; r <= rect.BottomRow; r++ {
			for c := rect.TopCol; c <= rect.BottomCol; c++ {
				rows[r][c] = rect.Label
			}
		}
	}
	return rows
}

// WriteSummary appends the trailing "Total Cost:" line for a batch run.
func WriteSummary(w io.Writer, summary solver.RunSummary) error {
	_, err := fmt.Fprintf(w, "Total Cost: %d\n", summary.TotalCost)
	return err
}
