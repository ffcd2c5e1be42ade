package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		wantKind Kind
	}{
		{name: "absent", value: Absent(), wantKind: KindAbsent},
		{name: "number", value: Number(3.5), wantKind: KindNumber},
		{name: "text", value: Text("hello"), wantKind: KindText},
		{name: "category", value: Category("Cash"), wantKind: KindCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.value.Kind())
		})
	}
}

func TestAbsentIsDistinctFromZero(t *testing.T) {
	zero := Number(0)
	require.False(t, zero.IsAbsent())

	f, ok := zero.Number()
	require.True(t, ok)
	assert.Equal(t, 0.0, f)

	assert.True(t, Absent().IsAbsent())
	_, ok = Absent().Number()
	assert.False(t, ok)
}

func TestNumberRejectsNaN(t *testing.T) {
	assert.True(t, Number(math.NaN()).IsAbsent())
	assert.True(t, Number(math.Inf(1)).IsAbsent())
	assert.True(t, Number(math.Inf(-1)).IsAbsent())
}

func TestMulPropagatesAbsent(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want Value
	}{
		{name: "both present", a: Number(2), b: Number(10), want: Number(20)},
		{name: "left absent", a: Absent(), b: Number(10), want: Absent()},
		{name: "right absent", a: Number(2), b: Absent(), want: Absent()},
		{name: "both absent", a: Absent(), b: Absent(), want: Absent()},
		{name: "text operand", a: Text("2"), b: Number(10), want: Absent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mul(tt.a, tt.b))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Absent().String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "20", Number(20).String())
	assert.Equal(t, "Chair", Category("Chair").String())
}
