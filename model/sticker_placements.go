package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// StickerPlacement ステッカー配置構造体
type StickerPlacement struct {
	ID        uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"id"`
	SubjectID uuid.UUID `gorm:"type:char(36);not null;index:idx_sticker_placements_subject_id_user_id,priority:1" json:"subjectId"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index;index:idx_sticker_placements_subject_id_user_id,priority:2" json:"userId"`
	StickerID uuid.UUID `gorm:"type:char(36);not null;index" json:"stickerId"`
	PositionX float64   `gorm:"type:double;not null;default:0" json:"positionX"`
	PositionY float64   `gorm:"type:double;not null;default:0" json:"positionY"`
	Rotation  float64   `gorm:"type:double;not null;default:0" json:"rotation"`
	Scale     float64   `gorm:"type:double;not null;default:0" json:"scale"`
	PlacedAt  time.Time `gorm:"precision:6;index" json:"placedAt"`
}

// TableName ステッカー配置テーブル名を取得します
func (*StickerPlacement) TableName() string {
	return "sticker_placements"
}

// StickerPlacementWithSticker ステッカー情報を付与したステッカー配置構造体
type StickerPlacementWithSticker struct {
	*StickerPlacement
	Sticker *Sticker `json:"sticker,omitempty"`
}
