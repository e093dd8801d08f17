// Package value holds the dynamically typed element stored by the shell's
// collections. A Value is a tagged union; each kind renders with its own rule.
package value

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"collections/struct/list"
)

type Kind int

const (
	String Kind = iota
	Int
	Decimal
	Time
	List
)

const dateLayout = "2006-01-02"

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Time:
		return "time"
	case List:
		return "list"
	default:
		return "unknown"
	}
}

type Value struct {
	kind Kind
	i    int64
	s    string
	d    decimal.Decimal
	t    time.Time
	l    *list.Collection[Value]
}

func OfString(s string) Value {
	return Value{kind: String, s: s}
}

func OfInt(i int64) Value {
	return Value{kind: Int, i: i}
}

func OfDecimal(d decimal.Decimal) Value {
	return Value{kind: Decimal, d: d}
}

func OfTime(t time.Time) Value {
	return Value{kind: Time, t: t}
}

// OfList nests l. Callers pass a snapshot (see Collection.Clone) so that a
// collection never ends up containing itself.
func OfList(l *list.Collection[Value]) Value {
	return Value{kind: List, l: l}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == Int
}

func (v Value) Decimal() (decimal.Decimal, bool) {
	return v.d, v.kind == Decimal
}

func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == Time
}

func (v Value) List() (*list.Collection[Value], bool) {
	return v.l, v.kind == List
}

func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Decimal:
		return v.d.String()
	case Time:
		if h, m, s := v.t.Clock(); h == 0 && m == 0 && s == 0 && v.t.Nanosecond() == 0 {
			return v.t.Format(dateLayout)
		}
		return v.t.Format(time.RFC3339)
	case List:
		if v.l == nil {
			return "[]"
		}
		return v.l.String()
	default:
		return v.s
	}
}

// Parse classifies a token: integers, then dates, then other numbers;
// anything else stays a string.
func Parse(token string) Value {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return OfInt(i)
	}
	if t, err := time.Parse(dateLayout, token); err == nil {
		return OfTime(t)
	}
	if t, err := time.Parse(time.RFC3339, token); err == nil {
		return OfTime(t)
	}
	if d, err := decimal.NewFromString(token); err == nil {
		return OfDecimal(d)
	}
	return OfString(token)
}
