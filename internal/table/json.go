package table

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// number is a float64 that marshals NaN and the infinities as null,
// since JSON has no spelling for them.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// jsonRow is one row of the --format=json output.
type jsonRow struct {
	Values []number `json:"values"`
	Mean   number   `json:"mean"`
	StdDev number   `json:"stdDev"`
}

// jsonSheet is the document written by RenderJSON.
type jsonSheet struct {
	Columns int       `json:"columns"`
	Rows    []jsonRow `json:"rows"`
	Max     number    `json:"max"`
}

// RenderJSON writes the grid as a single line of JSON. Values are not
// rounded.
func (t *Table) RenderJSON(w io.Writer) error {
	columns := t.grid.Columns()
	doc := jsonSheet{
		Columns: columns,
		Rows:    []jsonRow{},
		Max:     number(t.grid.MaxValue()),
	}
	for i := 0; i < t.grid.Rows(); i++ {
		row, err := t.grid.Row(i)
		if err != nil {
			return fmt.Errorf("reading row %d: %w", i, err)
		}
		values := make([]number, columns)
		for j := range values {
			values[j] = number(row[j])
		}
		doc.Rows = append(doc.Rows, jsonRow{
			Values: values,
			Mean:   number(row[columns]),
			StdDev: number(row[columns+1]),
		})
	}

	outputB, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(outputB))
	return err
}
