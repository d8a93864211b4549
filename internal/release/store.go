package release

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenStore はリリースメタデータのSQLiteファイルを読み取り専用で開く。
// maxOpenConnsはコネクションプールの上限（0以下の場合は無制限）。
func OpenStore(path string, maxOpenConns int) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	return sqlDB, nil
}
