package idcollection

import "github.com/gofrs/uuid"

// Collection 挿入順を保持するID付きコレクション
type Collection[T any] struct {
	order []uuid.UUID
	items map[uuid.UUID]T
}

// New 空のコレクションを生成します
func New[T any]() *Collection[T] {
	return &Collection[T]{
		items: map[uuid.UUID]T{},
	}
}

// Add 要素を追加します。既に同じIDが存在する場合は値を置き換えます
func (c *Collection[T]) Add(id uuid.UUID, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

// Get 指定したIDの要素を取得します
func (c *Collection[T]) Get(id uuid.UUID) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// Contains 指定したIDの要素が含まれているかどうか
func (c *Collection[T]) Contains(id uuid.UUID) bool {
	_, ok := c.items[id]
	return ok
}

// Values 全要素を挿入順で返します
func (c *Collection[T]) Values() []T {
	arr := make([]T, 0, len(c.order))
	for _, id := range c.order {
		arr = append(arr, c.items[id])
	}
	return arr
}

// Len 要素数を返します
func (c *Collection[T]) Len() int {
	return len(c.items)
}
