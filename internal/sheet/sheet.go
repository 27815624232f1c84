// Package sheet stores the grid of values entered by the user and
// computes the per-row mean and population standard deviation.
package sheet

import (
	"fmt"
	"math"
)

// New creates a sheet with the given number of data columns and rows.
// All cells, including the derived ones, start at zero.
func New(columns, rows int) (*Sheet, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidDimension, columns)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidDimension, rows)
	}
	cells := make([][]float64, rows)
	for i := range cells {
		cells[i] = make([]float64, columns+derivedColumns)
	}
	return &Sheet{columns: columns, rows: rows, cells: cells}, nil
}

// Columns returns the number of data columns, excluding the mean and
// standard deviation.
func (s *Sheet) Columns() int {
	return s.columns
}

// Rows returns the number of rows.
func (s *Sheet) Rows() int {
	return s.rows
}

// MeanColumn is the index of the derived mean cell in every row.
func (s *Sheet) MeanColumn() int {
	return s.columns
}

// StdDevColumn is the index of the derived standard deviation cell in
// every row.
func (s *Sheet) StdDevColumn() int {
	return s.columns + 1
}

// SetCell stores value in a data cell. Both indices are zero-based;
// the derived columns cannot be written this way.
func (s *Sheet) SetCell(row, col int, value float64) error {
	if row < 0 || row >= s.rows || col < 0 || col >= s.columns {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	s.cells[row][col] = value
	return nil
}

// Cell returns any cell of the sheet, derived cells included.
func (s *Sheet) Cell(row, col int) (float64, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.columns+derivedColumns {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return s.cells[row][col], nil
}

// Row returns a copy of a full row, derived cells included.
func (s *Sheet) Row(row int) ([]float64, error) {
	if row < 0 || row >= s.rows {
		return nil, fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	out := make([]float64, len(s.cells[row]))
	copy(out, s.cells[row])
	return out, nil
}

// Mean returns the stored mean of a row. It is zero until
// ComputeMeans has run.
func (s *Sheet) Mean(row int) (float64, error) {
	return s.Cell(row, s.MeanColumn())
}

// StdDev returns the stored standard deviation of a row. It is zero
// until ComputeStdDevs has run.
func (s *Sheet) StdDev(row int) (float64, error) {
	return s.Cell(row, s.StdDevColumn())
}

// MaxValue returns the largest data cell. Derived cells are ignored.
func (s *Sheet) MaxValue() float64 {
	best := math.Inf(-1)
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.columns; j++ {
			if s.cells[i][j] > best {
				best = s.cells[i][j]
			}
		}
	}
	return best
}

// ComputeMeans stores the arithmetic mean of each row's data cells in
// the mean column.
func (s *Sheet) ComputeMeans() {
	n := float64(s.columns)
	for i := 0; i < s.rows; i++ {
		sum := 0.0
		for j := 0; j < s.columns; j++ {
			sum += s.cells[i][j]
		}
		s.cells[i][s.MeanColumn()] = sum / n
	}
}

// ComputeStdDevs stores the population standard deviation of each row
// in the last column, using sqrt(E[x^2] - mean^2) with the mean
// already stored by ComputeMeans. When cancellation makes the radicand
// slightly negative the result is NaN; it is not clamped.
func (s *Sheet) ComputeStdDevs() {
	n := float64(s.columns)
	for i := 0; i < s.rows; i++ {
		sumSquares := 0.0
		mean := s.cells[i][s.MeanColumn()]
		for j := 0; j < s.columns; j++ {
			sumSquares += s.cells[i][j] * s.cells[i][j]
		}
		s.cells[i][s.StdDevColumn()] = math.Sqrt(sumSquares/n - mean*mean)
	}
}

// Calculate fills both derived columns. The means must be computed
// first since the standard deviation reads them back.
func (s *Sheet) Calculate() {
	s.ComputeMeans()
	s.ComputeStdDevs()
}
