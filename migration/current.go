package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/traPtitech/stickers/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // collected_stickersに(user_id, sticker_id)のユニーク制約を追加
		v2(), // sticker_placementsに(subject_id, user_id)の複合インデックスを追加
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のスキーマの全テーブルのモデル構造体を記述すること
func AllTables() []interface{} {
	return model.Tables
}
