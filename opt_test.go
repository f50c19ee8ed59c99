package ezpc_test

import (
	"testing"

	"github.com/kamstrand/ezpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpt(t *testing.T) {
	s := ezpc.NewScanner("x")
	require.NoError(t, ezpc.Opt(ezpc.Tag("-"))(s))
	assert.Equal(t, "x", s.Remaining())

	s2 := ezpc.NewScanner("-x")
	require.NoError(t, ezpc.Opt(ezpc.Tag("-"))(s2))
	assert.Equal(t, "x", s2.Remaining())
}

func TestOptPropagatesFatal(t *testing.T) {
	fatal := ezpc.FatalMatch(ezpc.Tag("a"), "boom")
	err := ezpc.Opt(fatal)(ezpc.NewScanner("x"))
	require.Error(t, err)
	assert.True(t, ezpc.IsFatal(err))
}

func TestOptParser(t *testing.T) {
	digit := ezpc.MapMatch(ezpc.OneOf("0123456789"), func(s string) string { return s })
	p := ezpc.OptParser(digit)

	val, err := p(ezpc.NewScanner("5x"))
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, "5", *val)

	val, err = p(ezpc.NewScanner("x"))
	require.NoError(t, err)
	assert.Nil(t, val)
}
