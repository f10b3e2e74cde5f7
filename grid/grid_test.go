package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strawberryfields/greenhouse/grid"
)

func field(rows ...string) [][]byte {
	out := make([][]byte, len(rows))
	for i, row := range rows {
		out[i] = []byte(row)
	}
	return out
}

func TestNewGrid_Errors(t *testing.T) {
	_, err := grid.NewGrid(nil)
	require.ErrorIs(t, err, grid.ErrEmptyField)

	_, err = grid.NewGrid(field(""))
	require.ErrorIs(t, err, grid.ErrEmptyField)

	_, err = grid.NewGrid(field("@.", "."))
	require.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.NewGrid(field("@x"))
	require.ErrorIs(t, err, grid.ErrUnrecognizedCell)

	big := make([]string, grid.MaxDimension+1)
	for i := range big {
		big[i] = "."
	}
	_, err = grid.NewGrid(field(big...))
	require.ErrorIs(t, err, grid.ErrTooLarge)
}

func TestNewGrid_StrawberriesAndWeight(t *testing.T) {
	g, err := grid.NewGrid(field(
		"@..",
		"...",
		"..@",
	))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumRows())
	require.Equal(t, 3, g.NumCols())
	require.Equal(t, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, g.Strawberries())

	require.Equal(t, 2, g.Weight(0, 0, 2, 2))
	require.Equal(t, 1, g.Weight(0, 0, 0, 0))
	require.Equal(t, 0, g.Weight(0, 1, 1, 2))
	require.Equal(t, 1, g.Weight(2, 2, 2, 2))
}
