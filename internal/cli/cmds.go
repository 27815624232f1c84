package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/replit/sheetstat/internal/config"
	"github.com/replit/sheetstat/internal/prompt"
	"github.com/replit/sheetstat/internal/sheet"
	"github.com/replit/sheetstat/internal/table"
	"github.com/replit/sheetstat/internal/trace"
	"github.com/replit/sheetstat/internal/util"
)

// Prompts of the interactive session.
const (
	columnsPrompt = "How many columns do you want this spreadsheet to have?"
	rowsPrompt    = "How many rows do you want this spreadsheet to have?"
	cellPrompt    = "Enter value for cell (%d, %d): "
)

// populateSheet asks for every data cell, row by row. Rows and
// columns are numbered from one in the prompts.
func populateSheet(r *prompt.Reader, s *sheet.Sheet) error {
	for i := 1; i <= s.Rows(); i++ {
		for j := 1; j <= s.Columns(); j++ {
			value, err := r.ReadFloat(fmt.Sprintf(cellPrompt, i, j))
			if err != nil {
				return err
			}
			if err := s.SetCell(i-1, j-1, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// runSheet implements the whole session: it reads the dimensions and
// the cells from in, calculates the row statistics and writes the
// table to out. Panics are turned into the returned error.
func runSheet(ctx context.Context, in io.Reader, out io.Writer, opts runOptions) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	span, ctx := trace.StartSpan(ctx, "sheetstat.run")
	defer func() { trace.Finish(span, err) }()

	settings, err := config.LoadSettings(opts.settingsFile)
	if err != nil {
		return err
	}
	logger := util.NewLogger(opts.logLevel, "text", util.Stderr)
	logger.Debug().
		Int("precision", settings.Precision).
		Str("marker", settings.Marker).
		Bool("pager", settings.Pager).
		Msg("settings")

	r := prompt.NewReader(in, out, logger)
	columns, err := r.ReadInt(columnsPrompt, prompt.Positive)
	if err != nil {
		return err
	}
	rows, err := r.ReadInt(rowsPrompt, prompt.Positive)
	if err != nil {
		return err
	}
	s, err := sheet.New(columns, rows)
	if err != nil {
		return err
	}

	populateSpan, _ := trace.StartSpan(ctx, "populate")
	err = populateSheet(r, s)
	trace.Finish(populateSpan, err)
	if err != nil {
		return err
	}

	calculateSpan, _ := trace.StartSpan(ctx, "calculate")
	s.Calculate()
	trace.Finish(calculateSpan, nil)
	logger.Info().Int("columns", columns).Int("rows", rows).Float64("max", s.MaxValue()).Msg("calculated")

	renderSpan, _ := trace.StartSpan(ctx, "render")
	t := table.New(s, table.Options{
		Precision: settings.Precision,
		Marker:    settings.Marker,
		Color:     opts.color,
	})
	switch opts.format {
	case outputFormatJSON:
		err = t.RenderJSON(out)
	default:
		err = t.Print(out, settings.Pager && !opts.noPager)
	}
	trace.Finish(renderSpan, err)
	return err
}

// withInput runs fn on in and closes in afterwards, whatever fn does.
func withInput(in io.ReadCloser, fn func(io.Reader) error) error {
	defer in.Close()
	return fn(in)
}
