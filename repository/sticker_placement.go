package repository

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/traPtitech/stickers/model"
	"github.com/traPtitech/stickers/utils/optional"
)

// PlaceStickerArgs ステッカー配置引数
type PlaceStickerArgs struct {
	SubjectID uuid.UUID
	UserID    uuid.UUID
	StickerID uuid.UUID
	PositionX float64
	PositionY float64
	Rotation  float64
	Scale     float64
	// ID 省略した場合は自動生成されます
	ID optional.Of[uuid.UUID]
	// PlacedAt 省略した場合は現在時刻になります
	PlacedAt optional.Of[time.Time]
}

// StickerPlacementsSortKey ステッカー配置検索のソートキー
type StickerPlacementsSortKey int

const (
	// StickerPlacementsSortByPlacedAt 配置日時順
	StickerPlacementsSortByPlacedAt StickerPlacementsSortKey = iota
	// StickerPlacementsSortByID ID順
	StickerPlacementsSortByID
)

// StickerPlacementsQuery ステッカー配置検索クエリ
//
// 無効なフィールドは条件に含まれません（無制限）。
// 複数の条件はANDで結合されます。
type StickerPlacementsQuery struct {
	IDIn        optional.Of[[]uuid.UUID]
	PlacedSince optional.Of[time.Time]
	PlacedUntil optional.Of[time.Time]
	Inclusive   bool
	SubjectIn   optional.Of[[]uuid.UUID]
	UserIn      optional.Of[[]uuid.UUID]
	StickerIn   optional.Of[[]uuid.UUID]

	Sort   StickerPlacementsSortKey
	Asc    bool
	Limit  int
	Offset int
}

// UserStickerPlacementCount ユーザーのステッカー毎の配置先数
type UserStickerPlacementCount struct {
	StickerID uuid.UUID `json:"stickerId"`
	// SubjectCount そのステッカーを配置した重複を除いた対象の数
	SubjectCount int `json:"subjectCount"`
}

// SubjectStickerPlacementCount 対象毎のステッカー配置数
type SubjectStickerPlacementCount struct {
	SubjectID uuid.UUID `json:"subjectId"`
	Count     int       `json:"count"`
}

// StickerPlacementRepository ステッカー配置リポジトリ
type StickerPlacementRepository interface {
	// PlaceSticker ステッカーを配置します
	//
	// 成功した場合、配置レコードとnilを返します。
	// 同一ユーザーが同一対象に同じステッカーを複数回配置できます。
	// 指定したIDが既に使われている場合、ErrIDCollisionを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	PlaceSticker(args PlaceStickerArgs) (*model.StickerPlacement, error)
	// RemoveStickerPlacement 指定したIDの配置レコードを削除します
	//
	// 成功した場合、nilを返します。存在しないIDを指定した場合も
	// エラーにはなりません(冪等)。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	RemoveStickerPlacement(id uuid.UUID) error
	// GetStickerPlacement 指定したIDの配置レコードを取得します
	//
	// 成功した場合、ステッカー情報を付与した配置レコードとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetStickerPlacement(id uuid.UUID) (*model.StickerPlacementWithSticker, error)
	// GetStickerPlacements 指定したクエリで配置レコードを検索します
	//
	// 成功した場合、ステッカー情報を付与した配置レコードの配列とnilを返します。
	// Limitを指定した場合、次のページが存在するかどうかをmoreで返します。
	// DBによるエラーを返すことがあります。
	GetStickerPlacements(query StickerPlacementsQuery) (placements []*model.StickerPlacementWithSticker, more bool, err error)
	// CountStickerPlacements 指定したクエリに一致する配置レコード数を取得します
	//
	// 成功した場合、件数とnilを返します。クエリのソート・ページングは無視されます。
	// DBによるエラーを返すことがあります。
	CountStickerPlacements(query StickerPlacementsQuery) (int, error)
	// PruneUserStickerPlacements 指定した対象上の指定したユーザーの配置を新しい順にmax件まで残して削除します
	//
	// 成功した場合、削除した件数とnilを返します。配置数がmax以下の
	// 場合は何もしません。削除は1回のバッチ削除で行われます。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// 無視するかどうかは呼び出し側が判断してください。
	// DBによるエラーを返すことがあります。
	PruneUserStickerPlacements(subjectID, userID uuid.UUID, max int) (pruned int, err error)
	// RemoveUserStickerPlacements 指定したユーザーの配置レコードを全て削除します
	//
	// 成功した場合、nilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	RemoveUserStickerPlacements(userID uuid.UUID) error
	// GetUserUniqueStickerPlacementCounts 指定したユーザーのステッカー毎の配置先数を取得します
	//
	// ステッカーIDでグループ化し、それぞれ配置した対象の重複を除いた
	// 数を数えます。成功した場合、配列とnilを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	GetUserUniqueStickerPlacementCounts(userID uuid.UUID) ([]*UserStickerPlacementCount, error)
	// GetSubjectStickerPlacementCounts 指定した対象毎のステッカー配置数を取得します
	//
	// 成功した場合、配列とnilを返します。配置の無い対象は結果に
	// 含まれません。
	// DBによるエラーを返すことがあります。
	GetSubjectStickerPlacementCounts(subjectIDs []uuid.UUID) ([]*SubjectStickerPlacementCount, error)
}
