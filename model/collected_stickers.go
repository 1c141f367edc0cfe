package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// CollectedSticker ステッカー所持構造体
type CollectedSticker struct {
	ID         uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_collected_stickers_user_id_sticker_id,priority:1" json:"userId"`
	StickerID  uuid.UUID `gorm:"type:char(36);not null;index;uniqueIndex:uniq_collected_stickers_user_id_sticker_id,priority:2" json:"stickerId"`
	ReceivedAt time.Time `gorm:"precision:6;index" json:"receivedAt"`
}

// TableName ステッカー所持テーブル名を取得します
func (*CollectedSticker) TableName() string {
	return "collected_stickers"
}

// CollectedStickerWithSticker ステッカー情報を付与したステッカー所持構造体
//
// Stickerは取得時に解決された参照で、対応するステッカーが
// 存在しない場合はnilになります。
type CollectedStickerWithSticker struct {
	*CollectedSticker
	Sticker *Sticker `json:"sticker,omitempty"`
}
