package optional

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_ValueOrZero(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		var o Of[int]
		assert.EqualValues(t, 0, o.ValueOrZero())
	})
	t.Run("invalid, has value", func(t *testing.T) {
		o := Of[int]{Valid: false, V: 123}
		assert.EqualValues(t, 0, o.ValueOrZero())
	})
	t.Run("valid", func(t *testing.T) {
		o := From(123)
		assert.EqualValues(t, 123, o.ValueOrZero())
	})
}

func TestFromPtr(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		o := FromPtr[string](nil)
		assert.False(t, o.Valid)
	})
	t.Run("not nil", func(t *testing.T) {
		v := "Hello"
		o := FromPtr(&v)
		assert.True(t, o.Valid)
		assert.EqualValues(t, "Hello", o.V)
	})
}

func TestOf_UnmarshalJSON(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		var o Of[bool]
		err := o.UnmarshalJSON([]byte("null"))
		if assert.NoError(t, err) {
			assert.False(t, o.Valid)
		}
	})
	t.Run("int", func(t *testing.T) {
		var o Of[int]
		err := o.UnmarshalJSON([]byte("123"))
		if assert.NoError(t, err) {
			assert.True(t, o.Valid)
			assert.EqualValues(t, 123, o.V)
		}
	})
	t.Run("string", func(t *testing.T) {
		var o Of[string]
		err := o.UnmarshalJSON([]byte("\"Hello\""))
		if assert.NoError(t, err) {
			assert.True(t, o.Valid)
			assert.EqualValues(t, "Hello", o.V)
		}
	})
	t.Run("time.Time", func(t *testing.T) {
		var o Of[time.Time]
		now, err := time.Parse(time.RFC3339, "2022-10-10T14:12:02Z")
		require.NoError(t, err)
		err = o.UnmarshalJSON([]byte("\"" + now.Format(time.RFC3339) + "\""))
		if assert.NoError(t, err) {
			assert.True(t, o.Valid)
			assert.EqualValues(t, now, o.V)
		}
	})
	t.Run("uuid.UUID", func(t *testing.T) {
		var o Of[uuid.UUID]
		err := o.UnmarshalJSON([]byte("\"b3b6173c-6dd4-45a6-bcb8-9b74acb037be\""))
		if assert.NoError(t, err) {
			assert.True(t, o.Valid)
			assert.EqualValues(t, "b3b6173c-6dd4-45a6-bcb8-9b74acb037be", o.V.String())
		}
	})
}

func TestOf_MarshalJSON(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		var o Of[bool]
		v, err := o.MarshalJSON()
		if assert.NoError(t, err) {
			assert.EqualValues(t, "null", v)
		}
	})
	t.Run("bool", func(t *testing.T) {
		o := From(true)
		v, err := o.MarshalJSON()
		if assert.NoError(t, err) {
			assert.EqualValues(t, "true", v)
		}
	})
	t.Run("string", func(t *testing.T) {
		o := From("Hello")
		v, err := o.MarshalJSON()
		if assert.NoError(t, err) {
			assert.EqualValues(t, "\"Hello\"", v)
		}
	})
}
