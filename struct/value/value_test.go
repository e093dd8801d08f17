package value

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"collections/struct/list"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		kind  Kind
		str   string
	}{
		{"42", Int, "42"},
		{"-7", Int, "-7"},
		{"3.50", Decimal, "3.5"},
		{".25", Decimal, "0.25"},
		{"2024-03-01", Time, "2024-03-01"},
		{"2024-03-01T10:30:00Z", Time, "2024-03-01T10:30:00Z"},
		{"Jeni", String, "Jeni"},
		{"1.2.3", String, "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			v := Parse(tt.token)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.str, v.String())
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	i, ok := OfInt(5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	_, ok = OfString("5").Int()
	assert.False(t, ok)

	d, ok := OfDecimal(decimal.RequireFromString("1.5")).Decimal()
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromFloat(1.5)))

	when := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	got, ok := OfTime(when).Time()
	assert.True(t, ok)
	assert.True(t, got.Equal(when))

	l, ok := OfList(list.Make[Value]()).List()
	assert.True(t, ok)
	assert.Equal(t, 0, l.Len())
}

func TestValue_MixedAndNested(t *testing.T) {
	mixed := list.Make(OfString("Jeni"), OfString("Mike"), OfInt(1), OfInt(2))
	assert.Equal(t, "[Jeni, Mike, 1, 2]", mixed.String())

	names := list.Make(OfString("Jeni"), OfString("Anna"))
	nums := list.Make(OfInt(1), OfInt(2))
	dates := list.Make[Value]()
	nested := list.Make(OfList(names), OfList(nums), OfList(dates))
	assert.Equal(t, "[[Jeni, Anna], [1, 2], []]", nested.String())

	assert.Equal(t, "[]", OfList(nil).String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "decimal", Decimal.String())
	assert.Equal(t, "list", List.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
