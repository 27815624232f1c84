// Package prompt asks the user for values on a line-oriented terminal
// and keeps asking until the answer is acceptable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// Messages printed when an answer is rejected.
const (
	invalidIntMsg    = "Invalid input. Please enter a valid integer."
	conditionMsg     = "Input does not meet the required condition. Please try again."
	invalidNumberMsg = "Invalid input. Please enter a valid number."
)

// ErrParse marks an answer that is not a number. It never escapes
// ReadInt or ReadFloat, which ask again instead.
var ErrParse = errors.New("not a number")

// Validator decides whether a parsed integer is acceptable.
type Validator func(int) bool

// Positive accepts integers greater than zero.
func Positive(n int) bool { return n > 0 }

// NonNegative accepts zero and above.
func NonNegative(n int) bool { return n >= 0 }

// Reader reads answers from an input stream and writes prompts and
// complaints to an output stream. Integers are read a whole line at a
// time; numbers are read one whitespace-separated token at a time, so
// several cells can be answered on one line.
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger

	// Unread remainder of the current line, and whether there is
	// a current line at all.
	rest    string
	midLine bool
}

// NewReader creates a Reader. The logger receives a debug record for
// every rejected answer.
func NewReader(in io.Reader, out io.Writer, logger zerolog.Logger) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out, logger: logger}
}

// readRawLine returns the next line of input without its line ending.
// Running out of input is reported as io.ErrUnexpectedEOF.
func (r *Reader) readRawLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("reading input: %w", io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLine returns what is left of the current line, or the next line
// if there is no current one.
func (r *Reader) readLine() (string, error) {
	if r.midLine {
		line := r.rest
		r.discardLine()
		return line, nil
	}
	return r.readRawLine()
}

// nextToken returns the next whitespace-separated token, reading as
// many lines as it takes.
func (r *Reader) nextToken() (string, error) {
	for {
		trimmed := strings.TrimLeftFunc(r.rest, unicode.IsSpace)
		if r.midLine && trimmed != "" {
			end := strings.IndexFunc(trimmed, unicode.IsSpace)
			if end < 0 {
				end = len(trimmed)
			}
			r.rest = trimmed[end:]
			return trimmed[:end], nil
		}
		line, err := r.readRawLine()
		if err != nil {
			return "", err
		}
		r.rest = line
		r.midLine = true
	}
}

// discardLine drops the rest of the current line.
func (r *Reader) discardLine() {
	r.rest = ""
	r.midLine = false
}

// parseInt parses a line holding one base-10 integer that fits in 32
// bits. Surrounding whitespace is ignored.
func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return int(n), nil
}

// parseFloat parses a decimal floating-point token. Values too large
// for a float64 become infinities.
func parseFloat(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}

// ReadInt prints prompt on its own line and reads an integer that
// satisfies valid, asking again after every rejected line.
func (r *Reader) ReadInt(prompt string, valid Validator) (int, error) {
	for {
		fmt.Fprintln(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		n, err := parseInt(line)
		if err != nil {
			r.logger.Debug().Str("prompt", prompt).Err(err).Msg("rejected answer")
			fmt.Fprintln(r.out, invalidIntMsg)
			continue
		}
		if !valid(n) {
			r.logger.Debug().Str("prompt", prompt).Int("value", n).Msg("rejected answer")
			fmt.Fprintln(r.out, conditionMsg)
			continue
		}
		return n, nil
	}
}

// ReadFloat prints prompt without a line break and reads the next
// number. After a token that is not a number the rest of its line is
// dropped and the same prompt is printed again.
func (r *Reader) ReadFloat(prompt string) (float64, error) {
	for {
		fmt.Fprint(r.out, prompt)
		tok, err := r.nextToken()
		if err != nil {
			return 0, err
		}
		v, err := parseFloat(tok)
		if err != nil {
			r.logger.Debug().Str("prompt", prompt).Err(err).Msg("rejected answer")
			fmt.Fprintln(r.out, invalidNumberMsg)
			r.discardLine()
			continue
		}
		return v, nil
	}
}
