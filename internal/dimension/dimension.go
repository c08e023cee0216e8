// Package dimension builds the composite dimension keys that link reference
// rows to daily report rows.
package dimension

import (
	"fmt"
	"strconv"

	"github.com/dbsmedya/ausbeute/internal/types"
)

// Separator joins the two normalized values of a key, e.g. "75x75".
const Separator = "x"

// ParseError reports a value that could not be normalized.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot normalize dimension value %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize parses raw as a decimal (comma or period separator), truncates it
// toward zero and renders the integer, so "75,00", "75.00" and "75.9" all
// become "75".
func Normalize(raw string) (string, error) {
	v, err := types.ParseDecimal(raw)
	if err != nil {
		return "", &ParseError{Value: raw, Err: err}
	}
	n, err := types.TruncateToInt64(v)
	if err != nil {
		return "", &ParseError{Value: raw, Err: err}
	}
	return strconv.FormatInt(n, 10), nil
}

// Key normalizes both values and joins them with Separator.
func Key(dim1, dim2 string) (string, error) {
	a, err := Normalize(dim1)
	if err != nil {
		return "", err
	}
	b, err := Normalize(dim2)
	if err != nil {
		return "", err
	}
	return Join(a, b), nil
}

// Join concatenates two already normalized values.
func Join(a, b string) string {
	return a + Separator + b
}
