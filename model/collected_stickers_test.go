package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectedSticker_TableName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "collected_stickers", (&CollectedSticker{}).TableName())
}
