// Package prompt reads labeled numeric inputs from a line-oriented stream.
// It is the input-acquisition boundary for the quote pipeline: it prompts,
// reads one line per field, and parses the token, but holds no quoting
// logic of its own.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shipquote/pkg/types"
)

// InvalidInputError reports a token that did not parse as a finite decimal
// number for the named field. Its message is the user-facing text.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid %s input.", e.Field)
}

// Reader prompts on out and reads decimal tokens line by line from in.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// New returns a Reader over the given streams.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{sc: bufio.NewScanner(in), out: out}
}

// Measurement prints the prompt line, reads the next input line, and
// parses it as a measurement. A malformed token, a non-finite value, or an
// exhausted input stream yields an InvalidInputError naming the field; a
// failing underlying reader surfaces as a wrapped read error instead.
func (r *Reader) Measurement(promptLine, field string) (types.Measurement, error) {
	fmt.Fprintln(r.out, promptLine)

	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("read %s: %w", field, err)
		}
		// EOF before a token counts as invalid input for the field.
		return 0, &InvalidInputError{Field: field}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(r.sc.Text()), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidInputError{Field: field}
	}
	return types.Measurement(v), nil
}
