package repository

import (
	"github.com/gofrs/uuid"

	"github.com/traPtitech/stickers/utils/optional"
)

// PrivacyRepository 匿名化リポジトリ
type PrivacyRepository interface {
	// AnonymizeUserID 指定したユーザーIDを別のIDに書き換えます
	//
	// 所持レコードと配置レコードのuser_idを新しいIDに更新します。
	// 2つの更新は同一トランザクションで実行されます。
	// newIDを省略した場合、新しいIDをランダムに生成します。
	// 成功した場合、新しいIDとnilを返します。
	// userIDにuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	AnonymizeUserID(userID uuid.UUID, newID optional.Of[uuid.UUID]) (uuid.UUID, error)
}
