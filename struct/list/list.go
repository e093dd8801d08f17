package list

import (
	"fmt"
	"strings"
)

type Expected[T any] func(val T) bool

type Consumer[T any] func(idx int, val T) bool

// List is an index addressable sequence. Every method taking an index
// reports ErrOutOfRange (wrapped in *IndexError) instead of panicking.
type List[T any] interface {
	Add(val T)
	AddRange(values ...T)
	Get(index int) (T, error)
	Set(index int, val T) error
	Insert(index int, val T) error
	Remove(index int) (T, error)
	RemoveLast() (T, error)
	Exchange(i, j int) error
	Clear()
	Len() int
	ForEach(consumer Consumer[T])
	Contains(expected Expected[T]) bool
	Range(start int, stop int) ([]T, error)
	String() string
}

// render writes "[a, b, c]". Elements implementing fmt.Stringer, nested
// lists included, render through their own String method.
func render[T any](l List[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	l.ForEach(func(idx int, val T) bool {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(val))
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
