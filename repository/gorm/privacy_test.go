package gorm

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/traPtitech/stickers/repository"
	"github.com/traPtitech/stickers/utils/optional"
)

func TestRepositoryImpl_AnonymizeUserID(t *testing.T) {
	t.Parallel()
	repo, _, _ := setup(t, ex3)

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()

		_, err := repo.AnonymizeUserID(uuid.Nil, optional.Of[uuid.UUID]{})
		assert.EqualError(t, err, repository.ErrNilID.Error())
	})

	t.Run("generated replacement", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)

		s1 := mustMakeSticker(t, repo, rand)
		s2 := mustMakeSticker(t, repo, rand)
		userID := uuid.Must(uuid.NewV4())
		subjectID := uuid.Must(uuid.NewV4())
		mustGrantSticker(t, repo, userID, s1.ID)
		mustGrantSticker(t, repo, userID, s2.ID)
		mustPlaceSticker(t, repo, subjectID, userID, s1.ID)
		mustPlaceSticker(t, repo, subjectID, userID, s1.ID)
		mustPlaceSticker(t, repo, subjectID, userID, s2.ID)

		newID, err := repo.AnonymizeUserID(userID, optional.Of[uuid.UUID]{})
		require.NoError(err)
		assert.NotEqual(uuid.Nil, newID)
		assert.NotEqual(userID, newID)

		// 旧IDのレコードは残らない
		old, err := repo.GetCollectedStickersByUserID(userID)
		if assert.NoError(err) {
			assert.Empty(old)
		}
		c, err := repo.CountStickerPlacements(repository.StickerPlacementsQuery{
			UserIn: optional.From([]uuid.UUID{userID}),
		})
		if assert.NoError(err) {
			assert.Equal(0, c)
		}

		// 新IDに引き継がれる
		moved, err := repo.GetCollectedStickersByUserID(newID)
		if assert.NoError(err) {
			assert.Len(moved, 2)
		}
		c, err = repo.CountStickerPlacements(repository.StickerPlacementsQuery{
			UserIn: optional.From([]uuid.UUID{newID}),
		})
		if assert.NoError(err) {
			assert.Equal(3, c)
		}
	})

	t.Run("explicit replacement", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)

		s := mustMakeSticker(t, repo, rand)
		userID := uuid.Must(uuid.NewV4())
		replacement := uuid.Must(uuid.NewV4())
		mustGrantSticker(t, repo, userID, s.ID)

		newID, err := repo.AnonymizeUserID(userID, optional.From(replacement))
		require.NoError(err)
		assert.Equal(replacement, newID)

		moved, err := repo.GetCollectedStickersByUserID(replacement)
		if assert.NoError(err) {
			assert.Len(moved, 1)
		}
	})

	t.Run("user with no records", func(t *testing.T) {
		t.Parallel()
		assert := assert.New(t)

		newID, err := repo.AnonymizeUserID(uuid.Must(uuid.NewV4()), optional.Of[uuid.UUID]{})
		if assert.NoError(err) {
			assert.NotEqual(uuid.Nil, newID)
		}
	})
}
