package gormutil

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	errMySQLDuplicatedRecord uint16 = 1062
)

// IsMySQLDuplicatedRecordErr MySQL重複レコードエラーかどうか
func IsMySQLDuplicatedRecordErr(err error) bool {
	var mErr *mysql.MySQLError
	if !errors.As(err, &mErr) {
		return false
	}
	return mErr.Number == errMySQLDuplicatedRecord
}
