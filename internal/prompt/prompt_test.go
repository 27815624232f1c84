package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/replit/sheetstat/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	logger := util.NewLogger("error", "text", io.Discard)
	return NewReader(strings.NewReader(input), &out, logger), &out
}

func TestReadLogsRejectedAnswers(t *testing.T) {
	var out, log bytes.Buffer
	logger := util.NewLogger("debug", "json", &log)
	r := NewReader(strings.NewReader("0\n1\nx 3\n2\n"), &out, logger)

	_, err := r.ReadInt("How many?", Positive)
	require.NoError(t, err)
	_, err = r.ReadFloat("> ")
	require.NoError(t, err)

	assert.Contains(t, log.String(), `"value":0`)
	assert.Contains(t, log.String(), `"prompt":"> "`)
	assert.Equal(t, 2, strings.Count(log.String(), `"message":"rejected answer"`))
}

func TestReadIntRetries(t *testing.T) {
	r, out := newTestReader("abc\n2147483648\n0\n-2\n 3 \n")
	n, err := r.ReadInt("How many?", Positive)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, strings.Join([]string{
		"How many?",
		"Invalid input. Please enter a valid integer.",
		"How many?",
		"Invalid input. Please enter a valid integer.",
		"How many?",
		"Input does not meet the required condition. Please try again.",
		"How many?",
		"Input does not meet the required condition. Please try again.",
		"How many?",
		"",
	}, "\n"), out.String())
}

func TestReadIntCustomValidator(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	r, _ := newTestReader("3\n4\n")
	n, err := r.ReadInt("Even?", even)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	r, _ = newTestReader("0\n")
	n, err = r.ReadInt("Zero?", NonNegative)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReadIntEOF(t *testing.T) {
	r, _ := newTestReader("x\n")
	_, err := r.ReadInt("How many?", Positive)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadIntLastLineWithoutNewline(t *testing.T) {
	r, _ := newTestReader("12")
	n, err := r.ReadInt("How many?", Positive)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestReadFloatTokens(t *testing.T) {
	r, out := newTestReader("1.5 -2\n\n  3e2\n")
	for _, want := range []float64{1.5, -2, 300} {
		v, err := r.ReadFloat("> ")
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, "> > > ", out.String())

	_, err := r.ReadFloat("> ")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFloatDiscardsRestOfLine(t *testing.T) {
	r, out := newTestReader("4 five 6\n7\n")
	v, err := r.ReadFloat("a: ")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	v, err = r.ReadFloat("b: ")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	assert.Equal(t, "a: b: Invalid input. Please enter a valid number.\nb: ", out.String())
}

func TestParseErrorsWrapErrParse(t *testing.T) {
	_, err := parseInt("1.5")
	assert.ErrorIs(t, err, ErrParse)
	_, err = parseFloat("1,5")
	assert.ErrorIs(t, err, ErrParse)

	for _, tok := range []string{"0x1p3", "-0X10", "+0x1.8p1"} {
		_, err = parseFloat(tok)
		assert.ErrorIs(t, err, ErrParse, tok)
	}
	_, err = parseInt("-2147483649")
	assert.ErrorIs(t, err, ErrParse)
	n, err := parseInt(" 2147483647 ")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, n)

	v, err := parseFloat("0.5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = parseFloat("1e400")
	require.NoError(t, err)
	assert.True(t, v > 1e308)
}

func TestReadLineAfterToken(t *testing.T) {
	r, _ := newTestReader("1 2\n5\n")
	_, err := r.ReadFloat("")
	require.NoError(t, err)

	// The remainder of the current line is what comes next.
	n, err := r.ReadInt("n?", Positive)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
