package repository

// Repository データリポジトリ
type Repository interface {
	// Sync データベーススキーマを同期します
	//
	// スキーマを初期化した場合、init = trueを返します。
	Sync() (init bool, err error)
	StickerRepository
	CollectedStickerRepository
	StickerPlacementRepository
	PrivacyRepository
}
