package gorm

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/traPtitech/stickers/migration"
	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/random"
)

const (
	dbPrefix = "stickers-test-repo-"
	common   = "common"
	ex1      = "ex1"
	ex2      = "ex2"
	ex3      = "ex3"
	rand     = "random"
)

var (
	repositories = map[string]*Repository{}
)

func TestMain(m *testing.M) {
	user := getEnvOrDefault("MARIADB_USERNAME", "root")
	pass := getEnvOrDefault("MARIADB_PASSWORD", "password")
	host := getEnvOrDefault("MARIADB_HOSTNAME", "127.0.0.1")
	port := getEnvOrDefault("MARIADB_PORT", "3306")
	dbs := []string{
		common,
		ex1,
		ex2,
		ex3,
	}
	if err := migration.CreateDatabasesIfNotExists("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=true", user, pass, host, port), dbPrefix, dbs...); err != nil {
		panic(err)
	}

	for _, key := range dbs {
		engine, err := gorm.Open(mysql.New(mysql.Config{
			DSN: fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, pass, host, port, fmt.Sprintf("%s%s", dbPrefix, key)),
		}))
		if err != nil {
			panic(err)
		}
		db, err := engine.DB()
		if err != nil {
			panic(err)
		}
		db.SetMaxOpenConns(20)
		engine.Logger = logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
		})
		if err := migration.DropAll(engine); err != nil {
			panic(err)
		}

		repo, _, err := NewGormRepository(engine, zap.NewNop(), true)
		if err != nil {
			panic(err)
		}

		repositories[key] = repo.(*Repository)
	}

	// Execute tests
	code := m.Run()

	for _, v := range repositories {
		db, _ := v.db.DB()
		_ = db.Close()
	}
	os.Exit(code)
}

func setup(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions) {
	t.Helper()
	r, ok := repositories[repo]
	if !ok {
		t.FailNow()
	}
	assert, require := assertAndRequire(t)
	return r, assert, require
}

func getEnvOrDefault(env string, def string) string {
	s := os.Getenv(env)
	if len(s) == 0 {
		return def
	}
	return s
}

func getDB(repo repository.Repository) *gorm.DB {
	return repo.(*Repository).db
}

func assertAndRequire(t *testing.T) (*assert.Assertions, *require.Assertions) {
	return assert.New(t), require.New(t)
}

func mustMakeSticker(t *testing.T, repo repository.Repository, name string) *model.Sticker {
	t.Helper()
	if name == rand {
		name = random.AlphaNumeric(16)
	}
	s, err := repo.CreateSticker(repository.CreateStickerArgs{Name: name, Display: name, Category: "test"})
	require.NoError(t, err)
	return s
}

func mustGrantSticker(t *testing.T, repo repository.Repository, userID, stickerID uuid.UUID) *model.CollectedSticker {
	t.Helper()
	cs, err := repo.GrantSticker(repository.GrantStickerArgs{UserID: userID, StickerID: stickerID})
	require.NoError(t, err)
	return cs
}

func mustPlaceSticker(t *testing.T, repo repository.Repository, subjectID, userID, stickerID uuid.UUID) *model.StickerPlacement {
	t.Helper()
	p, err := repo.PlaceSticker(repository.PlaceStickerArgs{
		SubjectID: subjectID,
		UserID:    userID,
		StickerID: stickerID,
		PositionX: 0.5,
		PositionY: 0.5,
		Rotation:  0,
		Scale:     1,
	})
	require.NoError(t, err)
	return p
}

func count(t *testing.T, where *gorm.DB) int {
	t.Helper()
	var c int64
	require.NoError(t, where.Count(&c).Error)
	return int(c)
}
