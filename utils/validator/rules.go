package validator

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
)

// StickerNameRule ステッカー名バリデーションルール
var StickerNameRule = []vd.Rule{
	vd.RuneLength(1, 16),
}

// StickerNameRuleRequired ステッカー名バリデーションルール with Required
var StickerNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, StickerNameRule...)

// StickerDisplayRule ステッカー表示名バリデーションルール
var StickerDisplayRule = []vd.Rule{
	vd.RuneLength(0, 32),
}

// StickerCategoryRule ステッカーカテゴリバリデーションルール
var StickerCategoryRule = []vd.Rule{
	vd.RuneLength(0, 16),
}
