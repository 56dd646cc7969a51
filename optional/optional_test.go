package optional_test

import (
	"testing"

	"github.com/amp-labs/amp-ordered/optional"
	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	t.Run("Some contains the value", func(t *testing.T) {
		t.Parallel()

		v := optional.Some(42)
		assert.True(t, v.NonEmpty())
		assert.False(t, v.Empty())

		got, ok := v.Get()
		assert.True(t, ok)
		assert.Equal(t, 42, got)
	})

	t.Run("None is empty", func(t *testing.T) {
		t.Parallel()

		v := optional.None[int]()
		assert.True(t, v.Empty())
		assert.False(t, v.NonEmpty())

		got, ok := v.Get()
		assert.False(t, ok)
		assert.Zero(t, got)
	})
}

func TestValue_GetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", optional.Some("x").GetOrElse("fallback"))
	assert.Equal(t, "fallback", optional.None[string]().GetOrElse("fallback"))
}

func TestValue_GetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, optional.Some(7).GetOrPanic())
	assert.Panics(t, func() {
		optional.None[int]().GetOrPanic()
	})
}

func TestValue_OrElse(t *testing.T) {
	t.Parallel()

	alt := optional.Some(2)
	assert.Equal(t, optional.Some(1), optional.Some(1).OrElse(alt))
	assert.Equal(t, alt, optional.None[int]().OrElse(alt))
}

func TestValue_Filter(t *testing.T) {
	t.Parallel()

	even := func(n int) bool { return n%2 == 0 }

	assert.True(t, optional.Some(4).Filter(even).NonEmpty())
	assert.True(t, optional.Some(3).Filter(even).Empty())
	assert.True(t, optional.None[int]().Filter(even).Empty())
}

func TestValue_Equals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, optional.Some(1).Equals(optional.Some(1), eq))
	assert.False(t, optional.Some(1).Equals(optional.Some(2), eq))
	assert.False(t, optional.Some(1).Equals(optional.None[int](), eq))
	assert.True(t, optional.None[int]().Equals(optional.None[int](), eq))
}

func TestValue_SizeAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, optional.Some("a").Size())
	assert.Equal(t, 0, optional.None[string]().Size())
	assert.Equal(t, "Some(a)", optional.Some("a").String())
	assert.Equal(t, "None", optional.None[string]().String())
}

func TestValue_Iteration(t *testing.T) {
	t.Parallel()

	t.Run("All yields a present value once", func(t *testing.T) {
		t.Parallel()

		var seen []int
		for v := range optional.Some(9).All() {
			seen = append(seen, v)
		}

		assert.Equal(t, []int{9}, seen)
	})

	t.Run("ForEach skips None", func(t *testing.T) {
		t.Parallel()

		calls := 0
		optional.None[int]().ForEach(func(int) { calls++ })
		assert.Equal(t, 0, calls)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := optional.Map(optional.Some(21), func(n int) int { return n * 2 })
	assert.Equal(t, optional.Some(42), doubled)

	mapped := optional.Map(optional.None[int](), func(n int) string { return "x" })
	assert.True(t, mapped.Empty())
}
