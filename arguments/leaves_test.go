package arguments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	lit := NewLiteral("mode", "accept")
	ctx := NewContext(nil, testSettings())

	v, err := lit.Parse(ctx, NewCursor([]string{"ACCEPT"}))
	require.NoError(t, err)
	assert.Equal(t, "accept", v)

	_, err = lit.Parse(ctx, NewCursor([]string{"deny"}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "expected 'accept'")

	_, err = lit.Parse(ctx, NewCursor(nil))
	assert.ErrorIs(t, err, ErrMissingArgument)

	assert.Equal(t, []string{"accept"}, lit.Suggest(ctx, NewCursor([]string{"Ac"})))
	assert.Equal(t, []string{"accept"}, lit.Suggest(ctx, NewCursor([]string{""})))
	assert.Empty(t, lit.Suggest(ctx, NewCursor([]string{"d"})))
}

func TestInteger(t *testing.T) {
	num := NewInteger("amount", 1, 64)
	ctx := NewContext(nil, testSettings())

	v, err := num.Parse(ctx, NewCursor([]string{"64"}))
	require.NoError(t, err)
	assert.EqualValues(t, 64, v)

	_, err = num.Parse(ctx, NewCursor([]string{"6x"}))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = num.Parse(ctx, NewCursor([]string{"65"}))
	assert.ErrorIs(t, err, ErrArgumentRejected)
	assert.Equal(t, "65 is outside 1..64", err.Error())

	assert.Empty(t, num.Suggest(ctx, NewCursor([]string{"6"})))
}

func TestWordAndRemainder(t *testing.T) {
	ctx := NewContext(nil, testSettings())

	cur := NewCursor([]string{"hello", "big", "world"})
	v, err := NewWord("first").Parse(ctx, cur)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	v, err = NewRemainder("rest").Parse(ctx, cur)
	require.NoError(t, err)
	assert.Equal(t, "big world", v)
	assert.False(t, cur.HasNext())

	_, err = NewRemainder("rest").Parse(ctx, cur)
	assert.ErrorIs(t, err, ErrMissingArgument)
	_, err = NewWord("first").Parse(ctx, cur)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestParseErrorKinds(t *testing.T) {
	assert.Equal(t, "MissingArgument", KindMissing.String())
	assert.Equal(t, "InvalidArgument", KindInvalid.String())
	assert.Equal(t, "ArgumentRejected", KindRejected.String())
	assert.Equal(t, "Unknown", Kind(0).String())
	assert.Zero(t, KindOf(assert.AnError))

	pe := &ParseError{Kind: KindInvalid, Argument: "x"}
	assert.Equal(t, "invalid argument x", pe.Error())
}
