package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/utils/optional"
)

// CreateStickerArgs ステッカー作成引数
type CreateStickerArgs struct {
	// ID 省略した場合は自動生成されます
	ID            optional.Of[uuid.UUID]
	Name          string
	Display       string
	Category      string
	CategoryOrder int
	GroupBits     uint16
	// CreatedAt 省略した場合は現在時刻になります
	CreatedAt optional.Of[time.Time]
}

// UpdateStickerArgs ステッカー情報更新引数
type UpdateStickerArgs struct {
	Name          optional.Of[string]
	Display       optional.Of[string]
	Category      optional.Of[string]
	CategoryOrder optional.Of[int]
	GroupBits     optional.Of[uint16]
	CreatedAt     optional.Of[time.Time]
}

// StickersSortKey ステッカー検索のソートキー
type StickersSortKey int

const (
	// StickersSortByCreatedAt 作成日時順
	StickersSortByCreatedAt StickersSortKey = iota
	// StickersSortByID ID順
	StickersSortByID
)

// StickersQuery ステッカー検索クエリ
//
// 無効なフィールドは条件に含まれません（無制限）。
// 複数の条件はANDで結合されます。
type StickersQuery struct {
	// IDIn 指定したIDのいずれかを持つ
	IDIn optional.Of[[]uuid.UUID]
	// CreatedSince 指定した時刻以降(Inclusive=falseの場合は超過)に作成された
	CreatedSince optional.Of[time.Time]
	// CreatedUntil 指定した時刻以前(Inclusive=falseの場合は未満)に作成された
	CreatedUntil optional.Of[time.Time]
	// Inclusive 時刻の境界値を含めるかどうか
	Inclusive bool
	// NameLike 名前に指定した文字列を含む(大文字小文字を区別)
	NameLike optional.Of[string]
	// DisplayLike 表示名に指定した文字列を含む
	DisplayLike optional.Of[string]
	// Category カテゴリが完全一致する
	Category optional.Of[string]
	// GroupBits グループビットとのANDが非零になる
	GroupBits optional.Of[uint16]

	Sort   StickersSortKey
	Asc    bool
	Limit  int
	Offset int
}

// StickerRepository ステッカーリポジトリ
type StickerRepository interface {
	// CreateSticker ステッカーを作成します
	//
	// 成功した場合、ステッカーとnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// 指定したIDが既に使われている場合、ErrIDCollisionを返します。
	// DBによるエラーを返すことがあります。
	CreateSticker(args CreateStickerArgs) (*model.Sticker, error)
	// UpdateSticker 指定したステッカーの情報を更新します
	//
	// 成功した場合、nilを返します。更新する項目が無い場合は何もしません。
	// 存在しないステッカーの場合、ErrNotFoundを返します。
	// idにuuid.Nilを指定した場合、ErrNilIDを返します。
	// 更新内容に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdateSticker(id uuid.UUID, args UpdateStickerArgs) error
	// GetSticker 指定したIDのステッカーを取得します
	//
	// 成功した場合、ステッカーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetSticker(id uuid.UUID) (*model.Sticker, error)
	// GetStickers 指定したクエリでステッカーを検索します
	//
	// 成功した場合、ステッカーの配列とnilを返します。
	// Limitを指定した場合、次のページが存在するかどうかをmoreで返します。
	// DBによるエラーを返すことがあります。
	GetStickers(query StickersQuery) (stickers []*model.Sticker, more bool, err error)
	// CountStickers 指定したクエリに一致するステッカー数を取得します
	//
	// 成功した場合、件数とnilを返します。クエリのソート・ページングは無視されます。
	// DBによるエラーを返すことがあります。
	CountStickers(query StickersQuery) (int, error)
	// DeleteSticker 指定したIDのステッカーを削除します
	//
	// 成功した場合、nilを返します。そのステッカーを参照する
	// 所持レコード・配置レコードも全て削除されます。
	// 既に存在しない場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteSticker(id uuid.UUID) error
	// StickerExists 指定したIDのステッカーが存在するかどうかを返します
	//
	// 存在する場合、trueとnilを返します。
	// DBによるエラーを返すことがあります。
	StickerExists(id uuid.UUID) (bool, error)
	// GetUniqueStickerCategories 全ステッカーのカテゴリの重複を除いた一覧を取得します
	//
	// 成功した場合、カテゴリの配列とnilを返します。順序は保証されません。
	// DBによるエラーを返すことがあります。
	GetUniqueStickerCategories() ([]string, error)
}
