// Package config はrelinfoの設定を設定ファイルと環境変数から読み込む。
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envPrefix は環境変数のプレフィックス。RELINFO_DATABASE_PATH のように指定する。
const envPrefix = "RELINFO"

// Config はrelinfoの設定を表す。
type Config struct {
	// Port はHTTPサーバーの待ち受けポート。
	Port string `mapstructure:"port"`
	// DatabasePath はリリース情報を格納したSQLiteファイルのパス。
	DatabasePath string `mapstructure:"database_path"`
	// LogLevel はログレベル（debug, info, warn, error）。
	LogLevel string `mapstructure:"log_level"`
	// AllowedOrigins はCORSで許可するオリジンの一覧。
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// MaxOpenConns はデータベース接続プールの最大接続数。
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// RequestTimeoutSec は1リクエストあたりのタイムアウト秒数。
	RequestTimeoutSec int `mapstructure:"request_timeout_sec"`
}

// RequestTimeout はリクエストタイムアウトをtime.Durationで返す。
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// Load は設定を読み込む。
// configFile が空の場合はカレントディレクトリと /etc/relinfo/ から relinfo.yaml を探し、
// 見つからなければデフォルト値と環境変数のみを使う。
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("database_path", "rust_versions.sqlite3")
	v.SetDefault("log_level", "info")
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("max_open_conns", 4)
	v.SetDefault("request_timeout_sec", 10)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("relinfo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/relinfo/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PaaS環境で一般的な PORT もそのまま受け付ける
	if err := v.BindEnv("port", envPrefix+"_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("環境変数のバインドに失敗: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate は設定値の妥当性を検証する。
func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("port が空です")
	}
	if c.DatabasePath == "" {
		return errors.New("database_path が空です")
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max_open_conns は1以上である必要があります: %d", c.MaxOpenConns)
	}
	if c.RequestTimeoutSec < 1 {
		return fmt.Errorf("request_timeout_sec は1以上である必要があります: %d", c.RequestTimeoutSec)
	}
	return nil
}
