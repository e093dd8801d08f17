package list

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfRange is the only error kind produced by this package.
var ErrOutOfRange = errors.New("index out of range")

// IndexError describes a rejected index argument.
type IndexError struct {
	Op      string
	Indexes []int // every invalid index passed to Op
	Count   int   // element count at the time of the call
	Max     int   // largest index Op accepts, -1 when none is valid
}

func (e *IndexError) Error() string {
	idx := make([]string, len(e.Indexes))
	for i, v := range e.Indexes {
		idx[i] = strconv.Itoa(v)
	}
	if e.Max < 0 {
		return fmt.Sprintf("%s: index %s out of range: list is empty", e.Op, strings.Join(idx, ", "))
	}
	return fmt.Sprintf("%s: index %s out of range [0, %d] (count %d)",
		e.Op, strings.Join(idx, ", "), e.Max, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// checkIndex validates indexes against [0, count) for element access.
func checkIndex(op string, count int, indexes ...int) error {
	return checkBounds(op, count, count-1, indexes...)
}

// checkPosition validates an insertion point against [0, count].
func checkPosition(op string, count int, index int) error {
	return checkBounds(op, count, count, index)
}

func checkBounds(op string, count int, limit int, indexes ...int) error {
	var bad []int
	for _, index := range indexes {
		if index < 0 || index > limit {
			bad = append(bad, index)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &IndexError{
		Op:      op,
		Indexes: bad,
		Count:   count,
		Max:     limit,
	}
}
