package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/relinfo/internal/config"
	"github.com/nao1215/relinfo/internal/release"
	"github.com/nao1215/relinfo/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shutdownTimeout は停止時に処理中のリクエストを待つ時間。
const shutdownTimeout = 10 * time.Second

// newServeCommand はHTTPサーバーを起動するコマンドを生成する。
func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

// serve はサーバーを起動し、ctxが終了したらグレースフルに停止する。
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	server, err := release.NewServer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("サーバーの初期化に失敗: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("relinfoを起動します",
			zap.String("port", cfg.Port),
			zap.String("database_path", cfg.DatabasePath),
		)
		errCh <- server.Run()
	}()

	select {
	case err := <-errCh:
		return errors.Join(err, server.Shutdown(context.Background()))
	case <-ctx.Done():
	}

	log.Info("relinfoを停止します")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// loadConfig は設定を読み込み、--dbフラグで指定されたパスを反映する。
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.DatabasePath = opts.dbPath
	}
	return cfg, nil
}
