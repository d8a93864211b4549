// relinfoのエントリポイント。
// ツールチェーンのリリース情報（チャンネル、バージョン、コンポーネント、成果物）を
// 読み取り専用のJSON APIとして提供し、同じクエリをCLIからも実行できるようにする。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// options はすべてのサブコマンドで共有するフラグ。
type options struct {
	// configFile は設定ファイルのパス。空の場合は既定の場所を探す。
	configFile string
	// dbPath は設定のdatabase_pathを上書きするSQLiteファイルのパス。
	dbPath string
	// serverURL は問い合わせ先のrelinfoサーバー。指定時はローカルのDBを開かない。
	serverURL string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand はルートコマンドを生成する。
func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "relinfo",
		Short: "Toolchain release metadata service",
		Long: `relinfo serves read-only metadata about toolchain releases:
named channels (stable, beta, nightly), versions, per-version components
with their platform targets, and release artefacts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to relinfo.yaml")
	flags.StringVar(&opts.dbPath, "db", "", "path to the release metadata SQLite file (overrides database_path)")
	flags.StringVar(&opts.serverURL, "server", "", "query a running relinfo server instead of the local database")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newChannelsCommand(opts))
	rootCmd.AddCommand(newVersionsCommand(opts))
	rootCmd.AddCommand(newInfoCommand(opts))
	rootCmd.AddCommand(newComponentCommand(opts))

	return rootCmd
}
