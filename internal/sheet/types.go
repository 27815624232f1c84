package sheet

import "errors"

// Sheet is a rectangular grid of numeric values. Each row holds
// Columns() data cells followed by two derived cells: the row mean at
// index Columns() and the row standard deviation at index
// Columns()+1. Construct a sheet with New, fill it with SetCell, then
// call Calculate before reading the derived cells.
type Sheet struct {
	columns int
	rows    int
	cells   [][]float64
}

// derivedColumns is the number of cells appended to every row for
// the mean and standard deviation.
const derivedColumns = 2

var (
	// ErrInvalidDimension is returned by New when the column or
	// row count is not positive.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRange is returned when a cell coordinate lies
	// outside the sheet.
	ErrOutOfRange = errors.New("cell position out of range")
)
