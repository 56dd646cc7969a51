package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/amp-labs/amp-ordered/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = stderrors.New("first")
	errSecond = stderrors.New("second")
)

func TestCollection_Empty(t *testing.T) {
	t.Parallel()

	var c errors.Collection

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_IgnoresNil(t *testing.T) {
	t.Parallel()

	var c errors.Collection

	c.Add(nil)

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_SingleError(t *testing.T) {
	t.Parallel()

	var c errors.Collection

	c.Add(errFirst)

	assert.True(t, c.HasError())
	assert.Equal(t, errFirst, c.GetError())
}

func TestCollection_MultipleErrors(t *testing.T) {
	t.Parallel()

	var c errors.Collection

	c.Add(errFirst)
	c.Add(nil)
	c.Add(errSecond)

	err := c.GetError()
	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	var c errors.Collection

	c.Add(errFirst)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}
