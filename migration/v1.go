package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v1 collected_stickersに(user_id, sticker_id)のユニーク制約を追加
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			return db.Exec("ALTER TABLE `collected_stickers` ADD UNIQUE `uniq_collected_stickers_user_id_sticker_id` (`user_id`, `sticker_id`)").Error
		},
	}
}
