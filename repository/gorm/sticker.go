package gorm

import (
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/gormutil"
	"github.com/traPtitech/stickers/utils/validator"
)

func stickersQueryScope(query repository.StickersQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(
			idInFilter("stickers.id", query.IDIn),
			timeCutoffFilter("stickers.created_at", query.CreatedSince, query.CreatedUntil, query.Inclusive),
			substringFilter("stickers.name", query.NameLike),
			substringFilter("stickers.display", query.DisplayLike),
			equalFilter("stickers.category", query.Category),
			bitwiseFilter("stickers.group_bits", query.GroupBits),
		)
	}
}

func validateStickerName(name string) error {
	if err := vd.Validate(name, validator.StickerNameRuleRequired...); err != nil {
		return repository.ArgError("name", "Name must be 1-16 characters")
	}
	return nil
}

func validateStickerDisplay(display string) error {
	if err := vd.Validate(display, validator.StickerDisplayRule...); err != nil {
		return repository.ArgError("display", "Display must be 0-32 characters")
	}
	return nil
}

func validateStickerCategory(category string) error {
	if err := vd.Validate(category, validator.StickerCategoryRule...); err != nil {
		return repository.ArgError("category", "Category must be 0-16 characters")
	}
	return nil
}

// CreateSticker implements StickerRepository interface.
func (repo *Repository) CreateSticker(args repository.CreateStickerArgs) (*model.Sticker, error) {
	sticker := &model.Sticker{
		ID:            args.ID.ValueOrZero(),
		Name:          args.Name,
		Display:       args.Display,
		Category:      args.Category,
		CategoryOrder: args.CategoryOrder,
		GroupBits:     args.GroupBits,
		CreatedAt:     args.CreatedAt.ValueOrZero(),
	}
	if sticker.ID == uuid.Nil {
		sticker.ID = uuid.Must(uuid.NewV4())
	}
	if !args.CreatedAt.Valid {
		sticker.CreatedAt = time.Now()
	}

	if err := validateStickerName(sticker.Name); err != nil {
		return nil, err
	}
	if err := validateStickerDisplay(sticker.Display); err != nil {
		return nil, err
	}
	if err := validateStickerCategory(sticker.Category); err != nil {
		return nil, err
	}

	if err := repo.db.Create(sticker).Error; err != nil {
		if gormutil.IsMySQLDuplicatedRecordErr(err) {
			return nil, repository.ErrIDCollision
		}
		return nil, err
	}
	return sticker, nil
}

// UpdateSticker implements StickerRepository interface.
func (repo *Repository) UpdateSticker(id uuid.UUID, args repository.UpdateStickerArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	var s model.Sticker
	changes := map[string]interface{}{}
	return repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, &model.Sticker{ID: id}).Error; err != nil {
			return convertError(err)
		}

		if args.Name.Valid {
			if err := validateStickerName(args.Name.V); err != nil {
				return err
			}
			changes["name"] = args.Name.V
		}
		if args.Display.Valid {
			if err := validateStickerDisplay(args.Display.V); err != nil {
				return err
			}
			changes["display"] = args.Display.V
		}
		if args.Category.Valid {
			if err := validateStickerCategory(args.Category.V); err != nil {
				return err
			}
			changes["category"] = args.Category.V
		}
		if args.CategoryOrder.Valid {
			changes["category_order"] = args.CategoryOrder.V
		}
		if args.GroupBits.Valid {
			changes["group_bits"] = args.GroupBits.V
		}
		if args.CreatedAt.Valid {
			changes["created_at"] = args.CreatedAt.V.Truncate(time.Microsecond)
		}

		if len(changes) > 0 {
			return tx.Model(&s).Updates(changes).Error
		}
		return nil
	})
}

// GetSticker implements StickerRepository interface.
func (repo *Repository) GetSticker(id uuid.UUID) (*model.Sticker, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	s := &model.Sticker{}
	if err := repo.db.First(s, &model.Sticker{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return s, nil
}

// GetStickers implements StickerRepository interface.
func (repo *Repository) GetStickers(query repository.StickersQuery) (stickers []*model.Sticker, more bool, err error) {
	stickers = make([]*model.Sticker, 0)

	tx := repo.db.Scopes(stickersQueryScope(query))

	col := "stickers.created_at"
	if query.Sort == repository.StickersSortByID {
		col = "stickers.id"
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
		err = tx.Limit(query.Limit + 1).Find(&stickers).Error
		if len(stickers) > query.Limit {
			return stickers[:len(stickers)-1], true, err
		}
	} else {
		err = tx.Find(&stickers).Error
	}
	return stickers, false, err
}

// CountStickers implements StickerRepository interface.
func (repo *Repository) CountStickers(query repository.StickersQuery) (int, error) {
	n, err := gormutil.Count(repo.db.Model(&model.Sticker{}).Scopes(stickersQueryScope(query)))
	return int(n), err
}

// DeleteSticker implements StickerRepository interface.
func (repo *Repository) DeleteSticker(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Sticker{ID: id})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}

		// 参照整合性はアプリケーション側で維持する
		// 外部キー制約は張っていないため、所持・配置レコードを明示的に削除する
		if err := tx.Where("sticker_id = ?", id).Delete(&model.CollectedSticker{}).Error; err != nil {
			return err
		}
		return tx.Where("sticker_id = ?", id).Delete(&model.StickerPlacement{}).Error
	})
}

// StickerExists implements StickerRepository interface.
func (repo *Repository) StickerExists(id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	return gormutil.RecordExists(repo.db, &model.Sticker{ID: id})
}

// GetUniqueStickerCategories implements StickerRepository interface.
func (repo *Repository) GetUniqueStickerCategories() ([]string, error) {
	categories := make([]string, 0)
	err := repo.db.
		Model(&model.Sticker{}).
		Distinct().
		Pluck("category", &categories).
		Error
	return categories, err
}
