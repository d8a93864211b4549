package release

import (
	"database/sql"
	"reflect"
	"testing"

	releasedb "github.com/nao1215/relinfo/internal/release/db"
)

// joinRow はテスト用の結合行を作る。targetが空文字の場合はターゲット列をすべてNULLにする。
func joinRow(component, version, target string) releasedb.ListComponentTargetsRow {
	row := releasedb.ListComponentTargetsRow{
		ComponentName: component,
		Version:       version,
	}
	if target != "" {
		row.TargetName = sql.NullString{String: target, Valid: true}
		row.Url = sql.NullString{String: "https://example.org/" + component + "/" + target, Valid: true}
		row.Hash = sql.NullString{String: component + "-" + target, Valid: true}
	}
	return row
}

// TestAggregator はコンポーネントの集約を検証する。
func TestAggregator(t *testing.T) {
	t.Parallel()

	t.Run("正常系_同名の2行が2ターゲットを持つ1コンポーネントになること", func(t *testing.T) {
		t.Parallel()

		got := aggregateComponents([]releasedb.ListComponentTargetsRow{
			joinRow("cargo", "0.81.0", "x86_64-linux"),
			joinRow("cargo", "0.81.0", "aarch64-linux"),
		})

		if len(got) != 1 {
			t.Fatalf("コンポーネント数 = %d, want 1", len(got))
		}
		want := []string{"x86_64-linux", "aarch64-linux"}
		if names := targetNamesOf(got[0].Targets); !reflect.DeepEqual(names, want) {
			t.Errorf("ターゲット = %v, want %v", names, want)
		}
	})

	t.Run("正常系_同じ行を2回与えてもコンポーネントは重複せずターゲットは重複すること", func(t *testing.T) {
		t.Parallel()

		rows := []releasedb.ListComponentTargetsRow{
			joinRow("cargo", "0.81.0", "x86_64-linux"),
			joinRow("rustc", "1.80.0", "x86_64-linux"),
		}
		got := aggregateComponents(append(append([]releasedb.ListComponentTargetsRow{}, rows...), rows...))

		if len(got) != 2 {
			t.Fatalf("コンポーネント数 = %d, want 2", len(got))
		}
		for _, c := range got {
			if len(c.Targets) != 2 {
				t.Errorf("%s のターゲット数 = %d, want 2", c.Name, len(c.Targets))
			}
			if c.Targets[0] != c.Targets[1] {
				t.Errorf("%s のターゲットが同一であるべき: %+v", c.Name, c.Targets)
			}
		}
	})

	t.Run("正常系_N行のうちM行がNULLターゲットの場合N-M件のターゲットになること", func(t *testing.T) {
		t.Parallel()

		got := aggregateComponents([]releasedb.ListComponentTargetsRow{
			joinRow("rust-std", "1.80.0", ""),
			joinRow("rust-std", "1.80.0", "x86_64-linux"),
			joinRow("rust-std", "1.80.0", ""),
			joinRow("rust-std", "1.80.0", "wasm32-unknown-unknown"),
			joinRow("rust-std", "1.80.0", "aarch64-linux"),
		})

		if len(got) != 1 {
			t.Fatalf("コンポーネント数 = %d, want 1", len(got))
		}
		if len(got[0].Targets) != 3 {
			t.Errorf("ターゲット数 = %d, want 3", len(got[0].Targets))
		}
	})

	t.Run("正常系_ターゲットが無いコンポーネントはターゲットがnilになること", func(t *testing.T) {
		t.Parallel()

		got := aggregateComponents([]releasedb.ListComponentTargetsRow{
			joinRow("rust-src", "1.80.0", ""),
		})

		if len(got) != 1 {
			t.Fatalf("コンポーネント数 = %d, want 1", len(got))
		}
		if got[0].Targets != nil {
			t.Errorf("Targets = %v, want nil", got[0].Targets)
		}
	})

	t.Run("正常系_2行目以降のスカラー項目で上書きされないこと", func(t *testing.T) {
		t.Parallel()

		first := joinRow("cargo", "0.81.0", "x86_64-linux")
		first.GitCommit = sql.NullString{String: "first", Valid: true}
		first.ProfileDefault = true
		second := joinRow("cargo", "9.9.9", "aarch64-linux")
		second.GitCommit = sql.NullString{String: "second", Valid: true}

		got := aggregateComponents([]releasedb.ListComponentTargetsRow{first, second})

		if len(got) != 1 {
			t.Fatalf("コンポーネント数 = %d, want 1", len(got))
		}
		if got[0].Version != "0.81.0" {
			t.Errorf("Version = %q, want %q", got[0].Version, "0.81.0")
		}
		if got[0].GitCommit == nil || *got[0].GitCommit != "first" {
			t.Errorf("GitCommit = %v, want %q", got[0].GitCommit, "first")
		}
		if !got[0].ProfileDefault {
			t.Error("ProfileDefault が true のままであるべき")
		}
	})

	t.Run("正常系_行が無い場合は空のスライスを返すこと", func(t *testing.T) {
		t.Parallel()

		got := aggregateComponents(nil)
		if got == nil || len(got) != 0 {
			t.Errorf("aggregateComponents(nil) = %v, want 空のスライス", got)
		}
	})

	t.Run("正常系_Componentsの戻り値を変更しても内部状態に影響しないこと", func(t *testing.T) {
		t.Parallel()

		agg := NewAggregator()
		agg.Add(Component{Name: "cargo", Version: "0.81.0"}, nil)

		got := agg.Components()
		got[0].Version = "changed"

		if agg.Components()[0].Version != "0.81.0" {
			t.Errorf("内部のVersion = %q, want %q", agg.Components()[0].Version, "0.81.0")
		}
		if agg.Len() != 1 {
			t.Errorf("Len() = %d, want 1", agg.Len())
		}
	})
}
