package ezpc_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kamstrand/ezpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValMatch(t *testing.T) {
	p := ezpc.ValMatch(ezpc.Tag("true"), true)

	val, err := p(ezpc.NewScanner("true"))
	require.NoError(t, err)
	assert.True(t, val)
}

func TestMapMatchConsumedSpanExactness(t *testing.T) {
	var seen string

	digits := ezpc.OneOrMore(ezpc.IsA(func(r rune) bool { return r >= '0' && r <= '9' }))
	p := ezpc.MapMatch(digits, func(consumed string) string {
		seen = consumed
		return consumed
	})

	val, err := p(ezpc.NewScanner("1234x"))
	require.NoError(t, err)
	assert.Equal(t, "1234", val)
	assert.Equal(t, "1234", seen)
}

func TestConvertMatchFatalOnFailure(t *testing.T) {
	digits := ezpc.OneOrMore(ezpc.IsA(func(r rune) bool { return r >= '0' && r <= '9' }))
	p := ezpc.ConvertMatch(digits, func(s string) (int, error) {
		return 0, errors.New("too big")
	}, "invalid number")

	_, err := p(ezpc.NewScanner("999"))
	require.Error(t, err)
	assert.True(t, ezpc.IsFatal(err))

	var pe *ezpc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Pos) // end of consumed span, not the start
}

func TestConvertMatchSuccess(t *testing.T) {
	digits := ezpc.OneOrMore(ezpc.IsA(func(r rune) bool { return r >= '0' && r <= '9' }))
	p := ezpc.ConvertMatch(digits, strconv.Atoi, "invalid number")

	val, err := p(ezpc.NewScanner("42"))
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestMapParserValParserConvertParser(t *testing.T) {
	digits := ezpc.ConvertMatch(
		ezpc.OneOrMore(ezpc.IsA(func(r rune) bool { return r >= '0' && r <= '9' })),
		strconv.Atoi,
		"invalid number",
	)

	doubled := ezpc.MapParser(digits, func(n int) int { return n * 2 })
	val, err := doubled(ezpc.NewScanner("21"))
	require.NoError(t, err)
	assert.Equal(t, 42, val)

	valued := ezpc.ValParser(digits, "seen a number")
	strVal, err := valued(ezpc.NewScanner("7"))
	require.NoError(t, err)
	assert.Equal(t, "seen a number", strVal)

	converted := ezpc.ConvertParser(digits, func(n int) (string, error) {
		if n < 0 {
			return "", errors.New("negative")
		}
		return strconv.Itoa(n), nil
	}, "bad number")
	sVal, err := converted(ezpc.NewScanner("9"))
	require.NoError(t, err)
	assert.Equal(t, "9", sVal)
}

func TestSpanning(t *testing.T) {
	digits := ezpc.ConvertMatch(
		ezpc.OneOrMore(ezpc.IsA(func(r rune) bool { return r >= '0' && r <= '9' })),
		strconv.Atoi,
		"invalid number",
	)

	type tagged struct {
		val  int
		span ezpc.Span
	}

	p := ezpc.Spanning(digits, func(val int, span ezpc.Span) tagged {
		return tagged{val: val, span: span}
	})

	val, err := p(ezpc.NewScanner("123"))
	require.NoError(t, err)
	assert.Equal(t, 123, val.val)
	assert.Equal(t, ezpc.Span{Start: 0, End: 3}, val.span)
}

// TestMapInfallible verifies that Map/Val cannot raise Mismatch where the
// underlying matcher would not have.
func TestMapInfallible(t *testing.T) {
	m := ezpc.Tag("a")
	mapped := ezpc.MapMatch(m, func(s string) int { return len(s) })
	valued := ezpc.ValMatch(m, 99)

	for _, input := range []string{"a", "b"} {
		mErr := m(ezpc.NewScanner(input))
		_, mapErr := mapped(ezpc.NewScanner(input))
		_, valErr := valued(ezpc.NewScanner(input))

		assert.Equal(t, mErr == nil, mapErr == nil)
		assert.Equal(t, mErr == nil, valErr == nil)
	}
}
