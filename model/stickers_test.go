package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSticker_TableName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "stickers", (&Sticker{}).TableName())
}
