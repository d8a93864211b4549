package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nao1215/relinfo/internal/release"
	"github.com/nao1215/relinfo/pkg/httpclient"
	"github.com/spf13/cobra"
)

// releaseQuerier はCLIから実行するリリース情報のクエリ。
// ローカルではrelease.Service、リモートではremoteQuerierが満たす。
type releaseQuerier interface {
	ListNamedChannels(ctx context.Context) ([]release.Release, error)
	ListAllVersions(ctx context.Context) ([]release.Release, error)
	GetVersionInfo(ctx context.Context, version string) (release.Release, error)
	GetComponent(ctx context.Context, component, version string) (release.Component, error)
}

// remoteQuerier は起動中のrelinfoサーバーにHTTPで問い合わせる。
type remoteQuerier struct {
	client *httpclient.Client
}

// ListNamedChannels は /api/v1/named_channels を呼び出す。
func (r *remoteQuerier) ListNamedChannels(ctx context.Context) ([]release.Release, error) {
	var releases []release.Release
	if err := r.client.GetJSON(ctx, "/api/v1/named_channels", &releases); err != nil {
		return nil, remoteError(err)
	}
	return releases, nil
}

// ListAllVersions は /api/v1/versions を呼び出す。
func (r *remoteQuerier) ListAllVersions(ctx context.Context) ([]release.Release, error) {
	var releases []release.Release
	if err := r.client.GetJSON(ctx, "/api/v1/versions", &releases); err != nil {
		return nil, remoteError(err)
	}
	return releases, nil
}

// GetVersionInfo は /api/v1/version/:version を呼び出す。
func (r *remoteQuerier) GetVersionInfo(ctx context.Context, version string) (release.Release, error) {
	if version == "" {
		version = release.ChannelLatest
	}
	var rel release.Release
	if err := r.client.GetJSON(ctx, "/api/v1/version/"+url.PathEscape(version), &rel); err != nil {
		return release.Release{}, remoteError(err)
	}
	return rel, nil
}

// GetComponent は /api/v1/component/:name/:version を呼び出す。
func (r *remoteQuerier) GetComponent(ctx context.Context, component, version string) (release.Component, error) {
	var components []release.Component
	path := fmt.Sprintf("/api/v1/component/%s/%s", url.PathEscape(component), url.PathEscape(version))
	if err := r.client.GetJSON(ctx, path, &components); err != nil {
		return release.Component{}, remoteError(err)
	}
	if len(components) == 0 {
		return release.Component{}, fmt.Errorf("%w: コンポーネント %q (バージョン %q)", release.ErrNotFound, component, version)
	}
	return components[0], nil
}

// remoteError はサーバーのステータスコードをリリース情報のエラーに対応付ける。
func remoteError(err error) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", release.ErrStoreUnavailable, err)
	}
	switch statusErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", release.ErrNotFound, err)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w", release.ErrStoreUnavailable, err)
	default:
		return err
	}
}

// openQuerier はフラグに応じてローカルまたはリモートのクエリ実行先を開く。
// 戻り値のcloseは使用後に必ず呼び出す。
func openQuerier(opts *options) (releaseQuerier, func() error, error) {
	if opts.serverURL != "" {
		return &remoteQuerier{client: httpclient.New(opts.serverURL)}, func() error { return nil }, nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := release.OpenStore(cfg.DatabasePath, cfg.MaxOpenConns)
	if err != nil {
		return nil, nil, err
	}
	return release.NewService(sqlDB), sqlDB.Close, nil
}

// runQuery はクエリ実行先を開いてfnを実行し、結果をJSONで出力する。
func runQuery(cmd *cobra.Command, opts *options, fn func(context.Context, releaseQuerier) (any, error)) (err error) {
	querier, closeFn, err := openQuerier(opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeFn())
	}()

	result, err := fn(cmd.Context(), querier)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

// printJSON はvをインデント付きJSONとして出力する。
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSONの出力に失敗: %w", err)
	}
	return nil
}

// newChannelsCommand は名前付きチャンネルを一覧するコマンドを生成する。
func newChannelsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List releases currently pointed to by stable, beta or nightly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts, func(ctx context.Context, q releaseQuerier) (any, error) {
				return q.ListNamedChannels(ctx)
			})
		},
	}
}

// newVersionsCommand は全リリースを一覧するコマンドを生成する。
func newVersionsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List every release, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts, func(ctx context.Context, q releaseQuerier) (any, error) {
				return q.ListAllVersions(ctx)
			})
		},
	}
}

// newInfoCommand はリリースの詳細を表示するコマンドを生成する。
func newInfoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [version|stable|beta|nightly|latest]",
		Short: "Show one release with its components and artefacts (default: latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var version string
			if len(args) == 1 {
				version = args[0]
			}
			return runQuery(cmd, opts, func(ctx context.Context, q releaseQuerier) (any, error) {
				return q.GetVersionInfo(ctx, version)
			})
		},
	}
}

// newComponentCommand はリリース内の1コンポーネントを表示するコマンドを生成する。
func newComponentCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "component <name> <version>",
		Short: "Show one component of a release with its targets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, func(ctx context.Context, q releaseQuerier) (any, error) {
				return q.GetComponent(ctx, args[0], args[1])
			})
		},
	}
}
