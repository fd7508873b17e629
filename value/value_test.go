package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/value"
)

func TestParse_Kinds(t *testing.T) {
	cases := []struct {
		in   string
		kind value.Kind
		out  string
	}{
		{"42", value.KindInt, "42"},
		{"-7", value.KindInt, "-7"},
		{"1.5", value.KindFloat, "1.5"},
		{"-.25", value.KindFloat, "-0.25"},
		{"red", value.KindIdent, "red"},
		{"_x1", value.KindIdent, "_x1"},
		{"hello world", value.KindString, `"hello world"`},
		{"1a", value.KindString, `"1a"`},
		{"99999999999999999999", value.KindFloat, "100000000000000000000"},
	}
	for _, c := range cases {
		v := value.Parse(c.in)
		assert.Equal(t, c.kind, v.Kind(), c.in)
		assert.Equal(t, c.out, v.String(), c.in)
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, value.Int(3).Equal(value.Int(3)))
	assert.False(t, value.Int(1).Equal(value.Float(1)))
	assert.False(t, value.Ident("a").Equal(value.Str("a")))
	assert.True(t, value.Float(math.NaN()).Equal(value.Float(math.NaN())))
	assert.True(t, value.List(value.Int(1), value.Str("x")).Equal(value.List(value.Int(1), value.Str("x"))))
	assert.False(t, value.List(value.Int(1)).Equal(value.List(value.Int(1), value.Int(2))))
	assert.True(t, value.Value{}.Equal(value.Value{}))
}

func TestValue_Conversions(t *testing.T) {
	i, ok := value.Float(4).AsInt()
	require.True(t, ok)
	assert.EqualValues(t, 4, i)

	_, ok = value.Float(4.5).AsInt()
	assert.False(t, ok)

	f, ok := value.Int(2).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 2.0, f)

	_, ok = value.Str("2").AsFloat()
	assert.False(t, ok)

	s, ok := value.Ident("abc").AsString()
	require.True(t, ok)
	assert.Equal(t, "abc", s)
	assert.Equal(t, "abc", value.Str("abc").Text())
	assert.Equal(t, "12", value.Int(12).Text())
}

func TestValue_Matrix(t *testing.T) {
	m := [][]float64{{0, 1.5}, {1.5, 0}}
	v := value.FromMatrix(m)
	assert.Equal(t, "{{0,1.5},{1.5,0}}", v.String())

	back, ok := v.Matrix()
	require.True(t, ok)
	assert.Equal(t, m, back)

	_, ok = value.List(value.List(value.Int(1)), value.List(value.Int(1), value.Int(2))).Matrix()
	assert.False(t, ok, "ragged rows")

	_, ok = value.List(value.List(value.Ident("x"))).Matrix()
	assert.False(t, ok, "non-numeric cell")
}

func TestValue_StringQuoting(t *testing.T) {
	assert.Equal(t, `"say \"hi\""`, value.Str(`say "hi"`).String())
	assert.Equal(t, `"C:\\"`, value.Str(`C:\`).String())
	assert.Equal(t, `"a\\\"b"`, value.Quote(`a\"b`))
	assert.Equal(t, "inf", value.Float(math.Inf(1)).String())
	assert.Equal(t, "1000000", value.Float(1e6).String())
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, value.IsIdentifier("node_1"))
	assert.True(t, value.IsIdentifier("Ωmega"))
	assert.False(t, value.IsIdentifier("1node"))
	assert.False(t, value.IsIdentifier(""))
	assert.False(t, value.IsIdentifier("a-b"))
}
