package table

// Grid is the read side of a calculated sheet. Each row returned by
// Row holds Columns() data cells followed by the mean and the standard
// deviation.
type Grid interface {
	Columns() int
	Rows() int
	Row(row int) ([]float64, error)
	MaxValue() float64
}

// Options controls how cells are written.
type Options struct {

	// Number of decimal places values are rounded to.
	Precision int

	// Text placed on both sides of every cell holding the maximum
	// data value.
	Marker string

	// Emphasise the marked cells with colour. Only honoured when
	// the output is a terminal.
	Color bool
}

// DefaultOptions is four decimal places and asterisk markers, without
// colour.
func DefaultOptions() Options {
	return Options{Precision: 4, Marker: "*"}
}

// Table renders a Grid as fixed-width text or JSON. Construct one
// with New, then use Render, Print or RenderJSON. A Table only reads
// from its grid.
type Table struct {
	grid Grid
	opts Options
}

// Labels of the two derived columns. The longer of them sets the
// minimum column width.
const (
	meanHeader   = "Mean"
	stdDevHeader = "StdDev"
)
