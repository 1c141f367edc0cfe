package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Sticker ステッカー構造体
type Sticker struct {
	ID            uuid.UUID `gorm:"type:char(36);not null;primaryKey"          json:"id"`
	Name          string    `gorm:"type:varchar(16);not null"                  json:"name"`
	Display       string    `gorm:"type:varchar(32);not null;default:''"      json:"display"`
	Category      string    `gorm:"type:varchar(16);not null;default:'';index" json:"category"`
	CategoryOrder int       `gorm:"type:int;not null;default:0"                json:"categoryOrder"`
	GroupBits     uint16    `gorm:"type:smallint unsigned;not null;default:0"  json:"groupBits"`
	CreatedAt     time.Time `gorm:"precision:6"                                json:"createdAt"`
}

// TableName ステッカーテーブル名を取得します
func (*Sticker) TableName() string {
	return "stickers"
}
