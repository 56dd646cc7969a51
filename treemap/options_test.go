package treemap_test

import (
	"testing"

	"github.com/amp-labs/amp-ordered/sortable"
	"github.com/amp-labs/amp-ordered/treemap"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_WithLogger(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, string](
		treemap.WithLogger(slogt.New(t)),
	)

	// Exercise every logged operation; behavior must not change with logging on.
	m.Put(sortable.Int(1), "a")
	m.Put(sortable.Int(2), "b")
	m.Put(sortable.Int(1), "a2")

	_, inserted := m.Insert(sortable.Int(3), "c")
	assert.True(t, inserted)

	_, inserted = m.GetOrInsert(sortable.Int(4))
	assert.True(t, inserted)

	require.True(t, m.Delete(sortable.Int(2)))
	require.NoError(t, m.Erase(m.Find(sortable.Int(3))))
	m.Clear()

	assert.True(t, m.Empty())
}

func TestMap_WithName(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, string](treemap.WithName("sessions"))
	m.Put(sortable.Int(1), "a")

	assert.Contains(t, m.String(), `"sessions"`)
	assert.Contains(t, m.String(), "size=1")
}

func TestMap_String(t *testing.T) {
	t.Parallel()

	m := treemap.New[sortable.Int, string]()
	m.Put(sortable.Int(1), "a")

	assert.Contains(t, m.String(), "treemap")
	assert.Contains(t, m.String(), "size=1")
}
