package gorm

import (
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/traPtitech/stickers/utils/optional"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// idInFilter 指定したカラムがIDリストのいずれかに一致する条件を付与します
//
// 無効または空のリストの場合は条件を付与しません。
func idInFilter(column string, ids optional.Of[[]uuid.UUID]) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !ids.Valid || len(ids.V) == 0 {
			return db
		}
		return db.Where(column+" IN ?", ids.V)
	}
}

// timeCutoffFilter 指定した時刻カラムに上限・下限の条件を付与します
func timeCutoffFilter(column string, since, until optional.Of[time.Time], inclusive bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if inclusive {
			if since.Valid {
				db = db.Where(column+" >= ?", since.V.Truncate(time.Microsecond))
			}
			if until.Valid {
				db = db.Where(column+" <= ?", until.V.Truncate(time.Microsecond))
			}
		} else {
			if since.Valid {
				db = db.Where(column+" > ?", since.V.Truncate(time.Microsecond))
			}
			if until.Valid {
				db = db.Where(column+" < ?", until.V.Truncate(time.Microsecond))
			}
		}
		return db
	}
}

// substringFilter 指定した文字列カラムが部分文字列を含む条件を付与します
//
// 大文字小文字を区別します。
func substringFilter(column string, pattern optional.Of[string]) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !pattern.Valid {
			return db
		}
		return db.Where(column+" LIKE BINARY ?", "%"+likeEscaper.Replace(pattern.V)+"%")
	}
}

// equalFilter 指定した文字列カラムが完全一致する条件を付与します
func equalFilter(column string, value optional.Of[string]) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !value.Valid {
			return db
		}
		return db.Where(column+" = ?", value.V)
	}
}

// bitwiseFilter 指定したフラグカラムとマスクのANDが非零になる条件を付与します
func bitwiseFilter(column string, mask optional.Of[uint16]) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !mask.Valid {
			return db
		}
		return db.Where(column+" & ? != 0", mask.V)
	}
}
