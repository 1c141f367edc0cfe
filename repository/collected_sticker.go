package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/utils/optional"
)

// GrantStickerArgs ステッカー付与引数
type GrantStickerArgs struct {
	UserID    uuid.UUID
	StickerID uuid.UUID
	// ID 省略した場合は自動生成されます
	ID optional.Of[uuid.UUID]
	// ReceivedAt 省略した場合は現在時刻になります
	ReceivedAt optional.Of[time.Time]
}

// CollectedStickersSortKey ステッカー所持検索のソートキー
type CollectedStickersSortKey int

const (
	// CollectedStickersSortByReceivedAt 受取日時順
	CollectedStickersSortByReceivedAt CollectedStickersSortKey = iota
	// CollectedStickersSortByID ID順
	CollectedStickersSortByID
)

// CollectedStickersQuery ステッカー所持検索クエリ
//
// 無効なフィールドは条件に含まれません（無制限）。
// 複数の条件はANDで結合されます。
type CollectedStickersQuery struct {
	IDIn          optional.Of[[]uuid.UUID]
	ReceivedSince optional.Of[time.Time]
	ReceivedUntil optional.Of[time.Time]
	Inclusive     bool
	UserIn        optional.Of[[]uuid.UUID]
	StickerIn     optional.Of[[]uuid.UUID]

	Sort   CollectedStickersSortKey
	Asc    bool
	Limit  int
	Offset int
}

// CollectedStickerRepository ステッカー所持リポジトリ
type CollectedStickerRepository interface {
	// GrantSticker 指定したユーザーにステッカーを付与します
	//
	// 成功した場合、所持レコードとnilを返します。
	// 既に所持している場合、ErrAlreadyCollectedを返します。
	// 指定したIDが既に使われている場合、ErrIDCollisionを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GrantSticker(args GrantStickerArgs) (*model.CollectedSticker, error)
	// RevokeSticker 指定したIDの所持レコードを削除します
	//
	// 成功した場合、nilを返します。存在しないIDを指定した場合も
	// エラーにはなりません(冪等)。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	RevokeSticker(id uuid.UUID) error
	// GetCollectedSticker 指定したIDの所持レコードを取得します
	//
	// 成功した場合、ステッカー情報を付与した所持レコードとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetCollectedSticker(id uuid.UUID) (*model.CollectedStickerWithSticker, error)
	// GetCollectedStickers 指定したクエリで所持レコードを検索します
	//
	// 成功した場合、ステッカー情報を付与した所持レコードの配列とnilを返します。
	// ステッカー情報は結果ページに含まれるステッカーIDに対する
	// 一括検索で解決されます。
	// Limitを指定した場合、次のページが存在するかどうかをmoreで返します。
	// DBによるエラーを返すことがあります。
	GetCollectedStickers(query CollectedStickersQuery) (stickers []*model.CollectedStickerWithSticker, more bool, err error)
	// CountCollectedStickers 指定したクエリに一致する所持レコード数を取得します
	//
	// 成功した場合、件数とnilを返します。クエリのソート・ページングは無視されます。
	// DBによるエラーを返すことがあります。
	CountCollectedStickers(query CollectedStickersQuery) (int, error)
	// GetCollectedStickersByUserID 指定したユーザーの全所持レコードを取得します
	//
	// 成功した場合、ステッカー情報を付与した所持レコードの配列とnilを返します。
	// 存在しないユーザーを指定した場合は空配列とnilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GetCollectedStickersByUserID(userID uuid.UUID) ([]*model.CollectedStickerWithSticker, error)
}
