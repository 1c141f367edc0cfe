package gorm

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/gormutil"
)

func stickerPlacementsQueryScope(query repository.StickerPlacementsQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(
			idInFilter("sticker_placements.id", query.IDIn),
			timeCutoffFilter("sticker_placements.placed_at", query.PlacedSince, query.PlacedUntil, query.Inclusive),
			idInFilter("sticker_placements.subject_id", query.SubjectIn),
			idInFilter("sticker_placements.user_id", query.UserIn),
			idInFilter("sticker_placements.sticker_id", query.StickerIn),
		)
	}
}

// PlaceSticker implements StickerPlacementRepository interface.
func (repo *Repository) PlaceSticker(args repository.PlaceStickerArgs) (*model.StickerPlacement, error) {
	if args.SubjectID == uuid.Nil || args.UserID == uuid.Nil || args.StickerID == uuid.Nil {
		return nil, repository.ErrNilID
	}

	p := &model.StickerPlacement{
		ID:        args.ID.ValueOrZero(),
		SubjectID: args.SubjectID,
		UserID:    args.UserID,
		StickerID: args.StickerID,
		PositionX: args.PositionX,
		PositionY: args.PositionY,
		Rotation:  args.Rotation,
		Scale:     args.Scale,
		PlacedAt:  args.PlacedAt.ValueOrZero(),
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	if !args.PlacedAt.Valid {
		p.PlacedAt = time.Now()
	}

	if err := repo.db.Create(p).Error; err != nil {
		if gormutil.IsMySQLDuplicatedRecordErr(err) {
			return nil, repository.ErrIDCollision
		}
		return nil, err
	}
	return p, nil
}

// RemoveStickerPlacement implements StickerPlacementRepository interface.
func (repo *Repository) RemoveStickerPlacement(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	// 存在しないIDの場合も成功として扱う(冪等)
	return repo.db.Delete(&model.StickerPlacement{ID: id}).Error
}

// GetStickerPlacement implements StickerPlacementRepository interface.
func (repo *Repository) GetStickerPlacement(id uuid.UUID) (*model.StickerPlacementWithSticker, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}

	var p model.StickerPlacement
	if err := repo.db.First(&p, &model.StickerPlacement{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}

	resolved, err := repo.getStickersIn([]uuid.UUID{p.StickerID})
	if err != nil {
		return nil, err
	}
	result := &model.StickerPlacementWithSticker{StickerPlacement: &p}
	if s, ok := resolved.Get(p.StickerID); ok {
		result.Sticker = s
	}
	return result, nil
}

// GetStickerPlacements implements StickerPlacementRepository interface.
func (repo *Repository) GetStickerPlacements(query repository.StickerPlacementsQuery) (placements []*model.StickerPlacementWithSticker, more bool, err error) {
	records := make([]*model.StickerPlacement, 0)

	tx := repo.db.Scopes(stickerPlacementsQueryScope(query))

	col := "sticker_placements.placed_at"
	if query.Sort == repository.StickerPlacementsSortByID {
		col = "sticker_placements.id"
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

	resolved, err := repo.getStickersIn(lo.Map(records, func(r *model.StickerPlacement, _ int) uuid.UUID { return r.StickerID }))
	if err != nil {
		return nil, false, err
	}

	placements = make([]*model.StickerPlacementWithSticker, 0, len(records))
	for _, r := range records {
		enriched := &model.StickerPlacementWithSticker{StickerPlacement: r}
		if s, ok := resolved.Get(r.StickerID); ok {
			enriched.Sticker = s
		}
		placements = append(placements, enriched)
	}
	return placements, more, nil
}

// CountStickerPlacements implements StickerPlacementRepository interface.
func (repo *Repository) CountStickerPlacements(query repository.StickerPlacementsQuery) (int, error) {
	n, err := gormutil.Count(repo.db.Model(&model.StickerPlacement{}).Scopes(stickerPlacementsQueryScope(query)))
	return int(n), err
}

// PruneUserStickerPlacements implements StickerPlacementRepository interface.
func (repo *Repository) PruneUserStickerPlacements(subjectID, userID uuid.UUID, max int) (pruned int, err error) {
	if subjectID == uuid.Nil || userID == uuid.Nil {
		return 0, repository.ErrNilID
	}
	if max < 0 {
		max = 0
	}

	err = repo.db.Transaction(func(tx *gorm.DB) error {
		var ids []uuid.UUID
		if err := tx.
			Model(&model.StickerPlacement{}).
			Where(&model.StickerPlacement{SubjectID: subjectID, UserID: userID}).
			Order("placed_at DESC").
			Pluck("id", &ids).
			Error; err != nil {
			return err
		}
		if len(ids) <= max {
			return nil
		}

		// 新しいmax件を残し、それより古い配置を一括削除する
		result := tx.
			Where("subject_id = ? AND user_id = ?", subjectID, userID).
			Where("id IN ?", ids[max:]).
			Delete(&model.StickerPlacement{})
		if result.Error != nil {
			return result.Error
		}
		pruned = int(result.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pruned, nil
}

// RemoveUserStickerPlacements implements StickerPlacementRepository interface.
func (repo *Repository) RemoveUserStickerPlacements(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Where("user_id = ?", userID).Delete(&model.StickerPlacement{}).Error
}

// GetUserUniqueStickerPlacementCounts implements StickerPlacementRepository interface.
func (repo *Repository) GetUserUniqueStickerPlacementCounts(userID uuid.UUID) ([]*repository.UserStickerPlacementCount, error) {
	if userID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	counts := make([]*repository.UserStickerPlacementCount, 0)
	err := repo.db.
		Model(&model.StickerPlacement{}).
		Select("sticker_id AS sticker_id, COUNT(DISTINCT subject_id) AS subject_count").
		Where("user_id = ?", userID).
		Group("sticker_id").
		Scan(&counts).
		Error
	return counts, err
}

// GetSubjectStickerPlacementCounts implements StickerPlacementRepository interface.
func (repo *Repository) GetSubjectStickerPlacementCounts(subjectIDs []uuid.UUID) ([]*repository.SubjectStickerPlacementCount, error) {
	counts := make([]*repository.SubjectStickerPlacementCount, 0)
	if len(subjectIDs) == 0 {
		return counts, nil
	}
	err := repo.db.
		Model(&model.StickerPlacement{}).
		Select("subject_id AS subject_id, COUNT(id) AS count").
		Where("subject_id IN ?", subjectIDs).
		Group("subject_id").
		Scan(&counts).
		Error
	return counts, err
}
