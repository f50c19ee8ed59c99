package ezpc_test

import (
	"testing"

	"github.com/kamstrand/ezpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatBounds(t *testing.T) {
	for _, tt := range []struct {
		name      string
		input     string
		r         ezpc.Range
		wantErr   bool
		remaining string
	}{
		{name: "within bounds", input: "aaa", r: ezpc.BetweenInclusive(1, 5), remaining: ""},
		{name: "hits max, stops early", input: "aaaaa", r: ezpc.BetweenInclusive(1, 3), remaining: "aa"},
		{name: "below min fails", input: "a", r: ezpc.BetweenInclusive(3, 5), wantErr: true},
		{name: "max zero always succeeds empty", input: "aaa", r: ezpc.Exactly(0), remaining: "aaa"},
		{name: "zero matches allowed", input: "bbb", r: ezpc.AtLeast(0), remaining: "bbb"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s := ezpc.NewScanner(tt.input)
			err := ezpc.Repeat(ezpc.Tag("a"), tt.r)(s)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ezpc.IsMismatch(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.remaining, s.Remaining())
		})
	}
}

func TestRepeatParserCollectsValues(t *testing.T) {
	digit := ezpc.MapMatch(ezpc.OneOf("0123456789"), func(s string) string { return s })

	vals, err := ezpc.RepeatParser(digit, ezpc.AtLeast(1))(ezpc.NewScanner("123x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, vals)
}

func TestRepeatZeroWidthBodyBoundedByMax(t *testing.T) {
	zeroWidth := ezpc.Tag("")
	s := ezpc.NewScanner("abc")

	err := ezpc.Repeat(zeroWidth, ezpc.Exactly(5))(s)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.Remaining())
}

func TestRepeatPropagatesFatal(t *testing.T) {
	fatal := ezpc.FatalMatch(ezpc.Tag("a"), "boom")
	err := ezpc.Repeat(ezpc.Alt(ezpc.Tag("b"), fatal), ezpc.AtLeast(0))(ezpc.NewScanner("x"))
	require.Error(t, err)
	assert.True(t, ezpc.IsFatal(err))
}

func TestZeroOrMoreOneOrMore(t *testing.T) {
	s := ezpc.NewScanner("")
	require.NoError(t, ezpc.ZeroOrMore(ezpc.Tag("a"))(s))

	err := ezpc.OneOrMore(ezpc.Tag("a"))(ezpc.NewScanner(""))
	require.Error(t, err)
	assert.True(t, ezpc.IsMismatch(err))
}

func TestSkipManySkipMany1(t *testing.T) {
	digit := ezpc.MapMatch(ezpc.OneOf("0123456789"), func(s string) string { return s })

	s := ezpc.NewScanner("123abc")
	require.NoError(t, ezpc.SkipMany(digit)(s))
	assert.Equal(t, "abc", s.Remaining())

	err := ezpc.SkipMany1(digit)(ezpc.NewScanner("abc"))
	require.Error(t, err)
	assert.True(t, ezpc.IsMismatch(err))
}

func TestFoldL1LeftAssociative(t *testing.T) {
	digit := ezpc.ConvertMatch(ezpc.OneOf("123456789"), func(s string) (int, error) {
		return int(s[0] - '0'), nil
	}, "expected digit")

	sub := ezpc.ValParser(ezpc.Tag("-"), func(a, b int) int { return a - b })

	expr := ezpc.FoldL1(digit, sub)

	val, err := expr(ezpc.NewScanner("9-3-2"))
	require.NoError(t, err)
	assert.Equal(t, 4, val) // (9-3)-2
}
