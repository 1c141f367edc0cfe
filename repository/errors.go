package repository

import "errors"

var (
	// ErrNilID 汎用エラー 引数のIDがNilです
	ErrNilID = errors.New("nil id")
	// ErrNotFound 汎用エラー 見つかりません
	ErrNotFound = errors.New("not found")
	// ErrIDCollision 汎用エラー 指定したIDが既に使われています
	ErrIDCollision = errors.New("id collision")
	// ErrAlreadyCollected 指定したユーザーが既にそのステッカーを所持しています
	ErrAlreadyCollected = errors.New("already collected")
)

// ArgumentError 引数エラー
type ArgumentError struct {
	FieldName string
	Message   string
}

// Error Messageを返します
func (e *ArgumentError) Error() string {
	return e.Message
}

// ArgError ArgumentErrorを生成します
func ArgError(field, message string) *ArgumentError {
	return &ArgumentError{FieldName: field, Message: message}
}

// IsArgError errがArgumentErrorかどうか
func IsArgError(err error) bool {
	var target *ArgumentError
	return errors.As(err, &target)
}
