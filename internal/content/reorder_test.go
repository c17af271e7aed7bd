package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct{ id string }

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func TestReorderByID(t *testing.T) {
	items := []item{{"a"}, {"b"}, {"c"}, {"d"}}
	idOf := func(i item) string { return i.id }

	got, err := ReorderByID(items, idOf, "d", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "b", "c"}, ids(got))

	got, err = ReorderByID(items, idOf, "a", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(got))

	// Moving before itself-adjacent target keeps order stable.
	got, err = ReorderByID(items, idOf, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
}

func TestReorderByIDUnknownIDs(t *testing.T) {
	items := []item{{"a"}, {"b"}}
	idOf := func(i item) string { return i.id }

	_, err := ReorderByID(items, idOf, "x", "")
	assert.Error(t, err)

	_, err = ReorderByID(items, idOf, "a", "x")
	assert.Error(t, err)
}
