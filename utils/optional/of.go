package optional

import (
	"bytes"
	"database/sql"
	"database/sql/driver"

	jsoniter "github.com/json-iterator/go"
)

// Of 値が無いことを表せる型
type Of[T any] struct {
	V     T
	Valid bool
}

func New[T any](v T, valid bool) Of[T] {
	return Of[T]{V: v, Valid: valid}
}

func From[T any](v T) Of[T] {
	return New(v, true)
}

func FromPtr[T any](v *T) Of[T] {
	if v == nil {
		return Of[T]{}
	}
	return From(*v)
}

func (o Of[T]) ValueOrZero() T {
	if o.Valid {
		return o.V
	}
	var zero T
	return zero
}

func (o *Of[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}

	if err := jsoniter.ConfigFastest.Unmarshal(data, &o.V); err != nil {
		return err
	}

	o.Valid = true
	return nil
}

func (o Of[T]) MarshalJSON() ([]byte, error) {
	if o.Valid {
		return jsoniter.ConfigFastest.Marshal(o.V)
	}
	return []byte("null"), nil
}

func (o *Of[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	o.V, o.Valid = n.V, n.Valid
	return nil
}

func (o Of[T]) Value() (driver.Value, error) {
	return sql.Null[T]{V: o.V, Valid: o.Valid}.Value()
}
