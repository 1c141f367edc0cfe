package gorm

import (
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/optional"
)

// AnonymizeUserID implements PrivacyRepository interface.
func (repo *Repository) AnonymizeUserID(userID uuid.UUID, newID optional.Of[uuid.UUID]) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, repository.ErrNilID
	}

	replacement := newID.ValueOrZero()
	if replacement == uuid.Nil {
		replacement = uuid.Must(uuid.NewV4())
	}

	// 所持・配置の書き換えは同一トランザクションで行う
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&model.CollectedSticker{}).
			Where("user_id = ?", userID).
			Update("user_id", replacement).
			Error; err != nil {
			return err
		}
		return tx.
			Model(&model.StickerPlacement{}).
			Where("user_id = ?", userID).
			Update("user_id", replacement).
			Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	repo.logger.Info("anonymized user id", zap.Stringer("userId", userID))
	return replacement, nil
}
