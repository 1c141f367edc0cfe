package idcollection

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCollection(t *testing.T) {
	t.Parallel()

	c := New[string]()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Values())

	id1 := uuid.Must(uuid.NewV4())
	id2 := uuid.Must(uuid.NewV4())
	id3 := uuid.Must(uuid.NewV4())

	c.Add(id2, "b")
	c.Add(id1, "a")
	c.Add(id3, "c")

	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains(id1))
	assert.False(t, c.Contains(uuid.Must(uuid.NewV4())))

	v, ok := c.Get(id2)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	// 挿入順を保持する
	assert.Equal(t, []string{"b", "a", "c"}, c.Values())

	// 同じIDの追加は置き換え
	c.Add(id1, "a2")
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"b", "a2", "c"}, c.Values())
}
