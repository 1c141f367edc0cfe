package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/traPtitech/stickers/migration"
	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/idcollection"
	"github.com/traPtitech/stickers/utils/optional"
)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Sync implements Repository interface.
func (repo *Repository) Sync() (init bool, err error) {
	if init, err = migration.Migrate(repo.db); err != nil {
		return false, err
	}
	if init {
		repo.logger.Info("database schema initialized")
	}
	return
}

// getStickersIn 指定したIDのステッカーを一括取得します
//
// 検索結果の付与ステッカー解決用。結果の行順を保持します。
func (repo *Repository) getStickersIn(ids []uuid.UUID) (*idcollection.Collection[*model.Sticker], error) {
	col := idcollection.New[*model.Sticker]()
	if len(ids) == 0 {
		return col, nil
	}
	stickers, _, err := repo.GetStickers(repository.StickersQuery{IDIn: optional.From(lo.Uniq(ids))})
	if err != nil {
		return nil, err
	}
	for _, s := range stickers {
		col.Add(s.ID, s)
	}
	return col, nil
}

// NewGormRepository リポジトリ実装を初期化して生成します
//
// doMigrationがtrueの場合、マイグレーションを実行します。
func NewGormRepository(db *gorm.DB, logger *zap.Logger, doMigration bool) (repository.Repository, bool, error) {
	repo := &Repository{
		db:     db,
		logger: logger.Named("repository"),
	}
	if doMigration {
		init, err := repo.Sync()
		if err != nil {
			return nil, false, err
		}
		return repo, init, nil
	}
	return repo, false, nil
}
