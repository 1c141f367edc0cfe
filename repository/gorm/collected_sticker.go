package gorm

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/gormutil"
	"github.com/traPtitech/stickers/utils/optional"
)

func collectedStickersQueryScope(query repository.CollectedStickersQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(
			idInFilter("collected_stickers.id", query.IDIn),
			timeCutoffFilter("collected_stickers.received_at", query.ReceivedSince, query.ReceivedUntil, query.Inclusive),
			idInFilter("collected_stickers.user_id", query.UserIn),
			idInFilter("collected_stickers.sticker_id", query.StickerIn),
		)
	}
}

// GrantSticker implements CollectedStickerRepository interface.
func (repo *Repository) GrantSticker(args repository.GrantStickerArgs) (*model.CollectedSticker, error) {
	if args.UserID == uuid.Nil || args.StickerID == uuid.Nil {
		return nil, repository.ErrNilID
	}

	cs := &model.CollectedSticker{
		ID:         args.ID.ValueOrZero(),
		UserID:     args.UserID,
		StickerID:  args.StickerID,
		ReceivedAt: args.ReceivedAt.ValueOrZero(),
	}
	if cs.ID == uuid.Nil {
		cs.ID = uuid.Must(uuid.NewV4())
	}
	if !args.ReceivedAt.Valid {
		cs.ReceivedAt = time.Now()
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		// 所持重複チェック
		if exists, err := gormutil.RecordExists(tx, &model.CollectedSticker{UserID: args.UserID, StickerID: args.StickerID}); err != nil {
			return err
		} else if exists {
			return repository.ErrAlreadyCollected
		}

		if err := tx.Create(cs).Error; err != nil {
			if gormutil.IsMySQLDuplicatedRecordErr(err) {
				return repository.ErrIDCollision
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// RevokeSticker implements CollectedStickerRepository interface.
func (repo *Repository) RevokeSticker(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	// 存在しないIDの場合も成功として扱う(冪等)
	return repo.db.Delete(&model.CollectedSticker{ID: id}).Error
}

// GetCollectedSticker implements CollectedStickerRepository interface.
func (repo *Repository) GetCollectedSticker(id uuid.UUID) (*model.CollectedStickerWithSticker, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}

	var cs model.CollectedSticker
	if err := repo.db.First(&cs, &model.CollectedSticker{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}

	resolved, err := repo.getStickersIn([]uuid.UUID{cs.StickerID})
	if err != nil {
		return nil, err
	}
	result := &model.CollectedStickerWithSticker{CollectedSticker: &cs}
	if s, ok := resolved.Get(cs.StickerID); ok {
		result.Sticker = s
	}
	return result, nil
}

// GetCollectedStickers implements CollectedStickerRepository interface.
func (repo *Repository) GetCollectedStickers(query repository.CollectedStickersQuery) (stickers []*model.CollectedStickerWithSticker, more bool, err error) {
	records := make([]*model.CollectedSticker, 0)

	tx := repo.db.Scopes(collectedStickersQueryScope(query))

	col := "collected_stickers.received_at"
	if query.Sort == repository.CollectedStickersSortByID {
		col = "collected_stickers.id"
	}
	if query.Asc {
		tx = tx.Order(col)
	} else {
		tx = tx.Order(col + " DESC")
	}

	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	if query.Limit > 0 {
		if err := tx.Limit(query.Limit + 1).Find(&records).Error; err != nil {
			return nil, false, err
		}
		if len(records) > query.Limit {
			records = records[:len(records)-1]
			more = true
		}
	} else {
		if err := tx.Find(&records).Error; err != nil {
			return nil, false, err
		}
	}

	// 結果ページに含まれるステッカーIDに対する一括検索で参照を解決する
	resolved, err := repo.getStickersIn(lo.Map(records, func(r *model.CollectedSticker, _ int) uuid.UUID { return r.StickerID }))
	if err != nil {
		return nil, false, err
	}

	stickers = make([]*model.CollectedStickerWithSticker, 0, len(records))
	for _, r := range records {
		enriched := &model.CollectedStickerWithSticker{CollectedSticker: r}
		if s, ok := resolved.Get(r.StickerID); ok {
			enriched.Sticker = s
		}
		stickers = append(stickers, enriched)
	}
	return stickers, more, nil
}

// CountCollectedStickers implements CollectedStickerRepository interface.
func (repo *Repository) CountCollectedStickers(query repository.CollectedStickersQuery) (int, error) {
	n, err := gormutil.Count(repo.db.Model(&model.CollectedSticker{}).Scopes(collectedStickersQueryScope(query)))
	return int(n), err
}

// GetCollectedStickersByUserID implements CollectedStickerRepository interface.
func (repo *Repository) GetCollectedStickersByUserID(userID uuid.UUID) ([]*model.CollectedStickerWithSticker, error) {
	if userID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	stickers, _, err := repo.GetCollectedStickers(repository.CollectedStickersQuery{
		UserIn: optional.From([]uuid.UUID{userID}),
	})
	return stickers, err
}
