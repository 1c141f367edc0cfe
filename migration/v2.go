package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v2 sticker_placementsに(subject_id, user_id)の複合インデックスを追加
func v2() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "2",
		Migrate: func(db *gorm.DB) error {
			return db.Exec("ALTER TABLE `sticker_placements` ADD INDEX `idx_sticker_placements_subject_id_user_id` (`subject_id`, `user_id`)").Error
		},
	}
}
