package treemap_test

import (
	"testing"

	"github.com/amp-labs/amp-ordered/sortable"
	"github.com/amp-labs/amp-ordered/treemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Seq(t *testing.T) {
	t.Parallel()

	t.Run("yields entries in ascending key order", func(t *testing.T) {
		t.Parallel()

		m := treemap.New[sortable.Int, string]()
		m.Put(sortable.Int(30), "thirty")
		m.Put(sortable.Int(10), "ten")
		m.Put(sortable.Int(20), "twenty")

		var keys []int

		var values []string

		for k, v := range m.Seq() {
			keys = append(keys, int(k))
			values = append(values, v)
		}

		assert.Equal(t, []int{10, 20, 30}, keys)
		assert.Equal(t, []string{"ten", "twenty", "thirty"}, values)
	})

	t.Run("supports early termination", func(t *testing.T) {
		t.Parallel()

		m := treemap.New[sortable.Int, int]()
		for i := range 10 {
			m.Put(sortable.Int(i), i)
		}

		seen := 0

		for range m.Seq() {
			seen++
			if seen == 3 {
				break
			}
		}

		assert.Equal(t, 3, seen)
	})

	t.Run("empty map yields nothing", func(t *testing.T) {
		t.Parallel()

		m := treemap.New[sortable.Int, int]()

		for range m.Seq() {
			t.Fatal("unexpected entry")
		}
	})
}

func TestMap_ForEach(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, int]()
	m.Put(sortable.Int(1), 10)
	m.Put(sortable.Int(2), 20)
	m.Put(sortable.Int(3), 30)

	sum := 0
	m.ForEach(func(_ sortable.Int, value int) {
		sum += value
	})

	assert.Equal(t, 60, sum)
}

func TestMap_ForAll(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, int]()
	m.Put(sortable.Int(2), 2)
	m.Put(sortable.Int(4), 4)

	assert.True(t, m.ForAll(func(_ sortable.Int, v int) bool { return v%2 == 0 }))
	assert.False(t, m.ForAll(func(_ sortable.Int, v int) bool { return v > 2 }))

	empty := treemap.New[sortable.Int, int]()
	assert.True(t, empty.ForAll(func(_ sortable.Int, _ int) bool { return false }))
}

func TestMap_Exists(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.String, int]()
	m.Put(sortable.String("a"), 1)
	m.Put(sortable.String("b"), 2)

	assert.True(t, m.Exists(func(k sortable.String, _ int) bool { return k == "b" }))
	assert.False(t, m.Exists(func(_ sortable.String, v int) bool { return v > 5 }))
}

func TestMap_Filter(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, int]()
	for i := range 10 {
		m.Put(sortable.Int(i), i)
	}

	evens := m.Filter(func(_ sortable.Int, v int) bool { return v%2 == 0 })

	assert.Equal(t, 5, evens.Size())
	assert.Equal(t, 10, m.Size())
	require.NoError(t, evens.Validate())

	for k, v := range evens.Seq() {
		assert.Equal(t, 0, v%2)
		assert.Equal(t, int(k), v)
	}

	// The filtered map is detached from the source.
	evens.Put(sortable.Int(100), 100)
	assert.False(t, m.Contains(sortable.Int(100)))
}

func TestMap_FindFirst(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, string]()
	m.Put(sortable.Int(1), "a")
	m.Put(sortable.Int(2), "b")
	m.Put(sortable.Int(3), "b")

	t.Run("returns the smallest matching key", func(t *testing.T) {
		t.Parallel()

		found := m.FindFirst(func(_ sortable.Int, v string) bool { return v == "b" })
		require.True(t, found.NonEmpty())

		pair := found.GetOrPanic()
		assert.Equal(t, sortable.Int(2), pair.Key)
		assert.Equal(t, "b", pair.Value)
	})

	t.Run("returns None when nothing matches", func(t *testing.T) {
		t.Parallel()

		found := m.FindFirst(func(_ sortable.Int, v string) bool { return v == "z" })
		assert.True(t, found.Empty())
	})
}

func TestMap_KeysAndValues(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, string]()
	m.Put(sortable.Int(2), "b")
	m.Put(sortable.Int(1), "a")
	m.Put(sortable.Int(3), "c")

	assert.Equal(t, []sortable.Int{1, 2, 3}, m.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, m.Values())

	empty := treemap.New[sortable.Int, string]()
	assert.Empty(t, empty.Keys())
	assert.Empty(t, empty.Values())
}

func TestMap_MinMax(t *testing.T) {
	t.Parallel()

	t.Run("returns the boundary entries", func(t *testing.T) {
		t.Parallel()

		m := treemap.New[sortable.Int, string]()
		m.Put(sortable.Int(5), "e")
		m.Put(sortable.Int(1), "a")
		m.Put(sortable.Int(9), "i")

		minPair, ok := m.Min().Get()
		require.True(t, ok)
		assert.Equal(t, sortable.Int(1), minPair.Key)
		assert.Equal(t, "a", minPair.Value)

		maxPair, ok := m.Max().Get()
		require.True(t, ok)
		assert.Equal(t, sortable.Int(9), maxPair.Key)
		assert.Equal(t, "i", maxPair.Value)
	})

	t.Run("returns None for an empty map", func(t *testing.T) {
		t.Parallel()

		m := treemap.New[sortable.Int, string]()
		assert.True(t, m.Min().Empty())
		assert.True(t, m.Max().Empty())
	})
}
