// Package table writes a calculated sheet as an aligned text table,
// with every cell holding the maximum data value wrapped in markers.
// It also provides the JSON rendering used by --format=json.
package table

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/replit/sheetstat/internal/util"
	"golang.org/x/term"
)

// markStyle is applied to marked cells when colour is enabled.
var markStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))

// New creates a table over the given grid. A zero Marker falls back
// to the default.
func New(grid Grid, opts Options) *Table {
	if opts.Marker == "" {
		opts.Marker = DefaultOptions().Marker
	}
	if opts.Precision < 0 {
		util.Panicf("negative table precision: %d", opts.Precision)
	}
	return &Table{grid: grid, opts: opts}
}

// format applies the table precision to a value.
func (t *Table) format(value float64) string {
	return Format(value, t.opts.Precision)
}

// isMarked reports whether the cell at column col holds the maximum.
// Only data cells are marked, and the comparison is on the raw value,
// so every tie is marked.
func (t *Table) isMarked(col int, value, maxValue float64) bool {
	return col < t.grid.Columns() && value == maxValue
}

// ColumnWidth returns the width shared by every column: the longest
// formatted cell, counting the markers of marked cells, and never
// less than the "StdDev" header.
func (t *Table) ColumnWidth() int {
	maxValue := t.grid.MaxValue()
	markerWidth := 2 * utf8.RuneCountInString(t.opts.Marker)
	width := 0
	for i := 0; i < t.grid.Rows(); i++ {
		row, err := t.grid.Row(i)
		if err != nil {
			util.Panicf("reading row %d: %s", i, err)
		}
		for j, value := range row {
			w := utf8.RuneCountInString(t.format(value))
			if t.isMarked(j, value, maxValue) {
				w += markerWidth
			}
			if w > width {
				width = w
			}
		}
	}
	if minWidth := len(stdDevHeader); width < minWidth {
		return minWidth
	}
	return width
}

// pad right-justifies s in a field of the given width. Longer strings
// are left alone.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// lineWidth is the printed width of the header and every row.
func (t *Table) lineWidth(width int) int {
	return width + len(" | ") + (t.grid.Columns()+2)*(width+2)
}

// Render writes the header, the separator and one line per row.
func (t *Table) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	width := t.ColumnWidth()
	maxValue := t.grid.MaxValue()
	columns := t.grid.Columns()

	bw.WriteString(strings.Repeat(" ", width) + " | ")
	for j := 1; j <= columns; j++ {
		bw.WriteString(pad(strconv.Itoa(j), width) + "  ")
	}
	bw.WriteString(pad(meanHeader, width) + "  ")
	bw.WriteString(pad(stdDevHeader, width) + "  ")
	bw.WriteString("\n")

	// The separator stops two characters short of the header.
	bw.WriteString(strings.Repeat("-", (columns+2)*(width+2)+width+1))
	bw.WriteString("\n")

	for i := 0; i < t.grid.Rows(); i++ {
		row, err := t.grid.Row(i)
		if err != nil {
			return fmt.Errorf("reading row %d: %w", i, err)
		}
		bw.WriteString(pad(strconv.Itoa(i+1), width) + " | ")
		for j, value := range row {
			cell := t.format(value)
			if t.isMarked(j, value, maxValue) {
				bw.WriteString(t.mark(cell, width))
			} else {
				bw.WriteString(pad(cell, width))
			}
			bw.WriteString("  ")
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// mark wraps a formatted cell in markers and justifies it. With colour
// enabled only the marked text is styled, so the padding is unchanged.
func (t *Table) mark(cell string, width int) string {
	marked := t.opts.Marker + cell + t.opts.Marker
	padded := pad(marked, width)
	if !t.opts.Color {
		return padded
	}
	return strings.TrimSuffix(padded, marked) + markStyle.Render(marked)
}

// String returns the rendered table.
func (t *Table) String() string {
	var buf bytes.Buffer
	if err := t.Render(&buf); err != nil {
		util.Panicf("rendering table: %s", err)
	}
	return buf.String()
}

// printOrPage either prints text to out or invokes the 'less'
// utility to display it. 'less' is invoked if paging is allowed, out
// is connected to a tty, the provided width is too wide for the tty,
// and 'less' is actually installed.
func printOrPage(out *os.File, text string, width int, allowPager bool) error {
	termWidth, _, err := term.GetSize(int(out.Fd()))
	if !allowPager || err != nil || width < termWidth {
		_, err := io.WriteString(out, text)
		return err
	}

	less, err := exec.LookPath("less")
	if err != nil {
		_, err := io.WriteString(out, text)
		return err
	}

	util.ProgressMsg("less -S")

	cmd := exec.Cmd{
		Path: less,
		Args: []string{"less", "-S"},
		// LANG is not always set (Docker, for one), so tell less
		// about the charset directly.
		Env:    append(os.Environ(), "LESSCHARSET=utf-8"),
		Stdout: out,
		Stderr: os.Stderr,
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("connecting pipe to pager stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		return fmt.Errorf("writing to pager: %w", err)
	}
	if err := stdin.Close(); err != nil {
		return fmt.Errorf("closing pipe to pager stdin: %w", err)
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// Print writes the table to w. When w is a terminal that is too
// narrow for the table, paging is allowed and the 'less' utility is
// installed, Print invokes it with the -S option to truncate long
// lines and allow horizontal scrolling. Colour is dropped unless w is
// a terminal.
func (t *Table) Print(w io.Writer, allowPager bool) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		if t.opts.Color {
			plain := *t
			plain.opts.Color = false
			t = &plain
		}
		return t.Render(w)
	}
	return printOrPage(f, t.String(), t.lineWidth(t.ColumnWidth()), allowPager)
}
