package model

// Tables データベースのテーブルモデル
// モデルを追加したら各自ここに追加しなければいけない
var Tables = []interface{}{
	&CollectedSticker{},
	&StickerPlacement{},
	&Sticker{},
}
