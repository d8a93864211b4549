package release

import (
	"database/sql"
	"os"
	"testing"

	_ "modernc.org/sqlite"
)

// schemaPath はテスト用DBの作成に使うスキーマファイルのパス。
const schemaPath = "../../db/release/schema.sql"

// newTestDB はスキーマ適用済みのインメモリSQLiteを生成する。
// インメモリDBは接続ごとに別のDBになるため、接続数を1に固定する。
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDBの作成に失敗: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("スキーマファイルの読み込みに失敗: %v", err)
	}
	if _, err := sqlDB.Exec(string(schema)); err != nil {
		t.Fatalf("スキーマ適用に失敗: %v", err)
	}
	return sqlDB
}

// mustExec はSQLを実行し、失敗した場合はテストを中断する。
func mustExec(t *testing.T, sqlDB *sql.DB, query string, args ...any) {
	t.Helper()

	if _, err := sqlDB.Exec(query, args...); err != nil {
		t.Fatalf("SQLの実行に失敗: %v\n%s", err, query)
	}
}

// channelFlags はリリースの最新フラグ。
type channelFlags struct {
	stable, beta, nightly bool
}

// insertRelease はreleasesに1行追加する。
func insertRelease(t *testing.T, sqlDB *sql.DB, version, date string, flags channelFlags) {
	t.Helper()

	mustExec(t, sqlDB,
		`INSERT INTO releases (version, release_date, is_latest_stable, is_latest_beta, is_latest_nightly) VALUES (?, ?, ?, ?, ?)`,
		version, date, flags.stable, flags.beta, flags.nightly)
}

// profileFlags はコンポーネントのプロファイルフラグ。
type profileFlags struct {
	complete, def, minimal bool
}

// insertComponent はcomponentsに1行追加する。commitにnilを渡すとNULLになる。
func insertComponent(t *testing.T, sqlDB *sql.DB, id int64, release, name, version string, commit any, profiles profileFlags) {
	t.Helper()

	mustExec(t, sqlDB,
		`INSERT INTO components (id, rust_version, name, version, git_commit, profile_complete, profile_default, profile_minimal) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, release, name, version, commit, profiles.complete, profiles.def, profiles.minimal)
}

// insertTarget はtargetsに1行追加する。
func insertTarget(t *testing.T, sqlDB *sql.DB, componentID int64, name, url, hash string) {
	t.Helper()

	mustExec(t, sqlDB,
		`INSERT INTO targets (component_id, name, url, hash) VALUES (?, ?, ?, ?)`,
		componentID, name, url, hash)
}

// insertArtefact はartefactsに1行追加する。
func insertArtefact(t *testing.T, sqlDB *sql.DB, release string, kind int64, url, hash string) {
	t.Helper()

	mustExec(t, sqlDB,
		`INSERT INTO artefacts (rust_version, type, url, hash) VALUES (?, ?, ?, ?)`,
		release, kind, url, hash)
}

// seedCatalog は 1.80.0（最新安定版）と 1.81.0（フラグ無し）の2リリースだけを登録する。
func seedCatalog(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	insertRelease(t, sqlDB, "1.80.0", "2024-07-25", channelFlags{stable: true})
	insertRelease(t, sqlDB, "1.81.0", "2024-09-05", channelFlags{})
}

// seedRelease180 は 1.80.0 のコンポーネント、ターゲット、成果物を登録する。
//
//   - rust-docs: コミットは番兵値、ターゲット1件
//   - cargo: コミット "cargo-commit"、ターゲット2件
//   - rustc: コミット "rustc-commit"、ターゲット1件
//   - rust-src: コミットNULL、ターゲット無し
func seedRelease180(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	insertComponent(t, sqlDB, 1, "1.80.0", "rust-docs", "1.80.0 (051478957 2024-07-21)", "None", profileFlags{complete: true, def: true})
	insertComponent(t, sqlDB, 2, "1.80.0", "cargo", "0.81.0 (2dbb1af80 2024-06-29)", "cargo-commit", profileFlags{complete: true, def: true, minimal: true})
	insertComponent(t, sqlDB, 3, "1.80.0", "rustc", "1.80.0 (051478957 2024-07-21)", "rustc-commit", profileFlags{complete: true, def: true, minimal: true})
	insertComponent(t, sqlDB, 4, "1.80.0", "rust-src", "1.80.0 (051478957 2024-07-21)", nil, profileFlags{complete: true})

	insertTarget(t, sqlDB, 1, "x86_64-linux", "https://static.example.org/rust-docs-x86_64.tar.xz", "docs-x86")
	insertTarget(t, sqlDB, 2, "x86_64-linux", "https://static.example.org/cargo-x86_64.tar.xz", "cargo-x86")
	insertTarget(t, sqlDB, 2, "aarch64-linux", "https://static.example.org/cargo-aarch64.tar.xz", "cargo-arm")
	insertTarget(t, sqlDB, 3, "x86_64-linux", "https://static.example.org/rustc-x86_64.tar.xz", "rustc-x86")

	insertArtefact(t, sqlDB, "1.80.0", 1, "https://static.example.org/rust-1.80.0.msi", "msi-hash")
	insertArtefact(t, sqlDB, "1.80.0", 3, "https://static.example.org/rustc-1.80.0-src.tar.gz", "src-hash")
}

// newSeededService は 1.80.0 と 1.81.0 を登録したDBを使うServiceを生成する。
func newSeededService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	sqlDB := newTestDB(t)
	seedCatalog(t, sqlDB)
	seedRelease180(t, sqlDB)
	return NewService(sqlDB), sqlDB
}
