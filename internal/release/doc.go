// Package release はツールチェーンのリリースメタデータを読み取るクエリサービスの内部実装を提供する。
//
// 正規化されたリレーショナルスキーマ（releases, components, targets, artefacts）を
// 読み取り専用で参照し、クライアント向けの入れ子構造に集約して返す。
//
// 主な機能:
//   - チャンネル名（stable, beta, nightly, latest）から具体的なバージョンへの解決
//   - リリース→コンポーネント、コンポーネント→ターゲットの一対多結合の集約
//   - コミットハッシュや成果物など、存在する場合のみ設定される任意項目の補完
//
// 書き込み、キャッシュ、認証、ページングは扱わない。
package release
