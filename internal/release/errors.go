package release

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound はチャンネル、バージョン、コンポーネントが見つからないことを表す。
	ErrNotFound = errors.New("対象が見つかりません")
	// ErrInvalidData はストアの値が想定する閉じた集合に含まれないことを表す。
	// ストアの破損を意味するため、既定値への読み替えは行わない。
	ErrInvalidData = errors.New("不正なデータです")
	// ErrStoreUnavailable は接続の取得または読み取りに失敗したことを表す。
	// 呼び出し側で再試行可能な内部エラーとして扱う。
	ErrStoreUnavailable = errors.New("ストアを利用できません")
	// ErrUnknownQuery は存在しないクエリ種別が指定されたことを表す。
	ErrUnknownQuery = errors.New("未知のクエリ種別です")
)

// storeError はストア操作の失敗をErrStoreUnavailableでラップする。
// 元のエラー（context.DeadlineExceeded等）もerrors.Isで判定できる。
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %sに失敗: %w", ErrStoreUnavailable, op, err)
}
