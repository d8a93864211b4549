package release

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/relinfo/internal/config"
	"github.com/nao1215/relinfo/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server はリリース情報を提供する読み取り専用のHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// service はリリースメタデータのクエリを実行する。
	service *Service
	// db は読み取り専用のSQLiteコネクションプール。
	db *sql.DB
	// logger は構造化ロガー。
	logger *zap.Logger
	// requestTimeout は1リクエストあたりの処理時間の上限。
	requestTimeout time.Duration
	// httpServer はrouterを公開するHTTPサーバー。
	httpServer *http.Server
}

// NewServer は設定に従ってストアを開き、新しいリリース情報サーバーを生成する。
// 起動時にストアへ疎通できない場合はエラーを返す。
func NewServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	sqlDB, err := OpenStore(cfg.DatabasePath, cfg.MaxOpenConns)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close() //nolint:errcheck
		return nil, fmt.Errorf("データベースへの疎通確認に失敗: %w", err)
	}

	return newServer(sqlDB, logger, cfg.Port, cfg.AllowedOrigins, cfg.RequestTimeout()), nil
}

// newServer はオープン済みのコネクションプールからサーバーを組み立てる。
func newServer(sqlDB *sql.DB, logger *zap.Logger, port string, allowedOrigins []string, requestTimeout time.Duration) *Server {
	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(allowedOrigins))

	s := &Server{
		router:         router,
		port:           port,
		service:        NewService(sqlDB),
		db:             sqlDB,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。Shutdownが呼ばれた場合はnilを返す。
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTPサーバーの起動に失敗: %w", err)
	}
	return nil
}

// Shutdown は処理中のリクエストの完了を待ってからサーバーを停止し、ストアを閉じる。
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTPサーバーの停止に失敗: %w", err)
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("データベースのクローズに失敗: %w", err)
	}
	return nil
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")
	api.Use(s.withTimeout())
	{
		// 最新フラグを持つリリース一覧
		api.GET("/named_channels", s.handleNamedChannels())
		// 全リリース一覧
		api.GET("/versions", s.handleVersions())
		// リリース詳細（チャンネル名またはバージョン）
		api.GET("/version/:version", s.handleVersionInfo())
		// リリース内の1コンポーネント
		api.GET("/component/:name/:version", s.handleComponent())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "relinfo"})
	})
	// Prometheusメトリクス
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// withTimeout はリクエストのコンテキストに処理時間の上限を設定するミドルウェアを返す。
func (s *Server) withTimeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.requestTimeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), s.requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// handleNamedChannels は最新フラグを持つリリースの一覧を返すハンドラを返す。
func (s *Server) handleNamedChannels() gin.HandlerFunc {
	return func(c *gin.Context) {
		releases, err := s.service.ListNamedChannels(c.Request.Context())
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, releases)
	}
}

// handleVersions は全リリースの一覧を返すハンドラを返す。
func (s *Server) handleVersions() gin.HandlerFunc {
	return func(c *gin.Context) {
		releases, err := s.service.ListAllVersions(c.Request.Context())
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, releases)
	}
}

// handleVersionInfo は1つのリリースの詳細を返すハンドラを返す。
// パスパラメータにはバージョンまたは stable, beta, nightly, latest を指定できる。
func (s *Server) handleVersionInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		release, err := s.service.GetVersionInfo(c.Request.Context(), c.Param("version"))
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, release)
	}
}

// handleComponent はリリース内の1つのコンポーネントを1要素の配列で返すハンドラを返す。
func (s *Server) handleComponent() gin.HandlerFunc {
	return func(c *gin.Context) {
		component, err := s.service.GetComponent(c.Request.Context(), c.Param("name"), c.Param("version"))
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, []Component{component})
	}
}

// writeError はエラーの種類に応じたステータスコードでエラーレスポンスを返す。
// 5xx系のエラーはログに出力する。
func (s *Server) writeError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("リクエストの処理に失敗しました",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	var message string
	switch status {
	case http.StatusNotFound:
		message = "指定されたリリースまたはコンポーネントが見つかりません"
	case http.StatusServiceUnavailable:
		message = "データベースを一時的に利用できません"
	default:
		message = "内部サーバーエラーが発生しました"
	}
	c.JSON(status, gin.H{"error": message})
}

// statusFromError はエラーをHTTPステータスコードに対応付ける。
func statusFromError(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
